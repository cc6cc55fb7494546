package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock abstracts time to keep the countdown deterministic in tests.
// clockwork.Clock and clockwork.FakeClock both satisfy it.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// System returns the wall clock.
func System() Clock {
	return clockwork.NewRealClock()
}
