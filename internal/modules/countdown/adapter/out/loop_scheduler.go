package out

import (
	"time"

	"trainer/internal/modules/countdown/domain"
	countdownout "trainer/internal/modules/countdown/port/out"
)

// LoopScheduler holds at most one pending tick. The engine only ever has one
// live handle, so a newer schedule replaces an older one.
type LoopScheduler struct {
	handle  domain.TickHandle
	after   time.Duration
	pending bool
}

func NewLoopScheduler() countdownout.TickQueue {
	return &LoopScheduler{}
}

func (s *LoopScheduler) Schedule(handle domain.TickHandle, after time.Duration) {
	s.handle = handle
	s.after = after
	s.pending = true
}

// Next pops the pending tick, if any.
func (s *LoopScheduler) Next() (domain.TickHandle, time.Duration, bool) {
	if !s.pending {
		return domain.NoTick, 0, false
	}
	s.pending = false
	return s.handle, s.after, true
}
