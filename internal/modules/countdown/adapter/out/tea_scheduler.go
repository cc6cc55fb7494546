package out

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trainer/internal/modules/countdown/domain"
	"trainer/internal/modules/countdown/dto"
)

// TeaScheduler turns scheduled ticks into Bubble Tea commands. The UI drains
// it after every engine call so ticks re-enter the program's event loop.
type TeaScheduler struct {
	pending []tea.Cmd
}

func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{}
}

func (s *TeaScheduler) Schedule(handle domain.TickHandle, after time.Duration) {
	h := uint64(handle)
	s.pending = append(s.pending, tea.Tick(after, func(at time.Time) tea.Msg {
		return dto.TickMsg{Handle: h, At: at}
	}))
}

// Drain returns the pending tick commands as one batch and forgets them.
func (s *TeaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Pending reports how many tick commands are waiting to be drained.
func (s *TeaScheduler) Pending() int {
	return len(s.pending)
}
