package out

import (
	"fmt"
	"io"

	"trainer/internal/modules/countdown/domain"
	countdownout "trainer/internal/modules/countdown/port/out"
)

// WriterRenderer prints countdown output for the headless CLI. With inPlace
// the display line is redrawn with a carriage return instead of a new line.
type WriterRenderer struct {
	out     io.Writer
	inPlace bool
	last    map[domain.Target]string
}

func NewWriterRenderer(out io.Writer, inPlace bool) countdownout.Renderer {
	return &WriterRenderer{out: out, inPlace: inPlace, last: map[domain.Target]string{}}
}

func (r *WriterRenderer) Render(target domain.Target, text string) {
	if r.out == nil {
		return
	}
	if prev, ok := r.last[target]; ok && prev == text {
		return
	}
	r.last[target] = text

	switch target {
	case domain.TargetDisplay:
		if r.inPlace {
			_, _ = fmt.Fprintf(r.out, "\r%s", text)
			return
		}
		_, _ = fmt.Fprintln(r.out, text)
	case domain.TargetResult:
		if text == "" {
			return
		}
		if r.inPlace {
			_, _ = fmt.Fprintln(r.out)
		}
		_, _ = fmt.Fprintln(r.out, text)
	}
}
