package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	countdowndto "trainer/internal/modules/countdown/dto"
	"trainer/internal/ui/theme"
)

const zeroDisplay = "00:00:00"

// maxStops caps how many recorded stops are listed under the readout.
const maxStops = 5

// Model renders the countdown readout, its progress and the stop log.
type Model struct {
	bar     progress.Model
	display string
	result  string
	snap    countdowndto.SnapshotOutput
	width   int
}

func New() Model {
	return Model{
		bar:     progress.New(progress.WithGradient(string(theme.Green), string(theme.Red)), progress.WithoutPercentage()),
		display: zeroDisplay,
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.bar.Width = max(10, min(msg.Width-8, 60))
	}
	return m, nil
}

// SetState takes the latest rendered texts and engine snapshot.
func (m *Model) SetState(display, result string, snap countdowndto.SnapshotOutput) {
	m.display = display
	m.result = result
	m.snap = snap
}

func (m Model) View() string {
	style := theme.Display
	switch {
	case m.display == zeroDisplay:
		style = theme.DisplayZero
	case m.snap.Running:
		style = theme.DisplayRunning
	}

	state := "idle"
	if m.snap.Running {
		state = "running"
	}
	header := theme.Title.Render("Countdown") + "  " +
		theme.Muted.Render(fmt.Sprintf("%s · %s", formatDuration(m.snap.Duration), state))

	lines := []string{
		header,
		style.Render(m.display),
		m.bar.ViewAs(m.elapsedRatio()),
	}
	if m.result != "" {
		lines = append(lines, "", theme.Hot.Render(m.result))
	}
	if stops := m.renderStops(); stops != "" {
		lines = append(lines, "", stops)
	}

	pane := theme.Pane
	if m.snap.Running {
		pane = theme.PaneActive
	}
	if m.width > 4 {
		pane = pane.Width(m.width - 4)
	}
	return pane.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) elapsedRatio() float64 {
	if m.snap.Duration <= 0 {
		return 0
	}
	total := int(m.snap.Duration / time.Second)
	if total == 0 {
		return 0
	}
	done := total - m.snap.Remaining
	if done < 0 {
		done = 0
	}
	return float64(done) / float64(total)
}

func (m Model) renderStops() string {
	if len(m.snap.EndTimes) == 0 {
		return ""
	}
	entries := m.snap.EndTimes
	first := 0
	if len(entries) > maxStops {
		first = len(entries) - maxStops
	}
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render("Stops") + "\n")
	for i := first; i < len(entries); i++ {
		sb.WriteString(fmt.Sprintf("  #%d  %s\n", i+1, entries[i]))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatDuration(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
