package out

import (
	"io"
	"time"

	countdownout "trainer/internal/modules/countdown/port/out"
)

// BellNotifier rings the terminal bell on expiry and passes the event on.
type BellNotifier struct {
	out  io.Writer
	next countdownout.Notifier
}

func NewBellNotifier(out io.Writer, next countdownout.Notifier) countdownout.Notifier {
	return BellNotifier{out: out, next: next}
}

func (n BellNotifier) Expired(at time.Time) {
	if n.out != nil {
		_, _ = io.WriteString(n.out, "\a")
	}
	if n.next != nil {
		n.next.Expired(at)
	}
}
