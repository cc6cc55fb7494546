package out

import (
	"time"

	"github.com/rs/zerolog"

	"trainer/internal/modules/countdown/domain"
	countdownout "trainer/internal/modules/countdown/port/out"
)

// Board keeps the latest text per render target for the TUI to paint. Writes
// to targets it does not know are dropped.
type Board struct {
	texts       map[domain.Target]string
	expirations int
	expiredAt   time.Time
	next        countdownout.Notifier
	log         zerolog.Logger
}

func NewBoard(initialDisplay string, next countdownout.Notifier, logger zerolog.Logger) *Board {
	return &Board{
		texts: map[domain.Target]string{
			domain.TargetDisplay: initialDisplay,
			domain.TargetResult:  "",
		},
		next: next,
		log:  logger,
	}
}

func (b *Board) Render(target domain.Target, text string) {
	if _, ok := b.texts[target]; !ok {
		b.log.Debug().Str("target", string(target)).Msg("render target missing")
		return
	}
	b.texts[target] = text
}

func (b *Board) Expired(at time.Time) {
	b.expirations++
	b.expiredAt = at
	b.texts[domain.TargetResult] = "Finished at: " + domain.FormatClock(at)
	if b.next != nil {
		b.next.Expired(at)
	}
}

func (b *Board) Display() string {
	return b.texts[domain.TargetDisplay]
}

func (b *Board) Result() string {
	return b.texts[domain.TargetResult]
}

// Expirations counts how often the countdown has run out.
func (b *Board) Expirations() int {
	return b.expirations
}
