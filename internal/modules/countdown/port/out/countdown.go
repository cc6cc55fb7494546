package out

import (
	"time"

	"trainer/internal/modules/countdown/domain"
)

// Renderer writes formatted text to a named target. Implementations swallow
// failures, including unknown targets.
type Renderer interface {
	Render(target domain.Target, text string)
}

// Notifier is told when the countdown runs out.
type Notifier interface {
	Expired(at time.Time)
}

// Scheduler arranges for a tick carrying handle to be delivered after the delay.
type Scheduler interface {
	Schedule(handle domain.TickHandle, after time.Duration)
}

// TickQueue is a Scheduler that a blocking driver loop can drain.
type TickQueue interface {
	Scheduler
	Next() (domain.TickHandle, time.Duration, bool)
}
