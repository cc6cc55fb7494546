package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	paneldto "trainer/internal/modules/panel/dto"
	"trainer/internal/ui/theme"
)

const perRow = 8

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
}

var keys = keyMap{
	Left:  key.NewBinding(key.WithKeys("left", "h")),
	Right: key.NewBinding(key.WithKeys("right", "l")),
	Up:    key.NewBinding(key.WithKeys("up", "k")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
}

// Model shows the buttons of one section and tracks the cursor.
type Model struct {
	sections []paneldto.SectionOutput
	active   int
	cursor   int
	width    int
}

func New() Model {
	return Model{}
}

// SetSections replaces the layout, keeping the active section by key when it survives.
func (m *Model) SetSections(sections []paneldto.SectionOutput) {
	activeKey := m.ActiveKey()
	m.sections = sections
	m.active = 0
	for i, s := range sections {
		if s.Key == activeKey {
			m.active = i
			break
		}
	}
	m.clampCursor()
}

func (m Model) Sections() []paneldto.SectionOutput {
	return m.sections
}

func (m Model) ActiveKey() string {
	if m.active < 0 || m.active >= len(m.sections) {
		return ""
	}
	return m.sections[m.active].Key
}

// Focus makes the section with sectionKey active.
func (m *Model) Focus(sectionKey string) {
	for i, s := range m.sections {
		if s.Key == sectionKey {
			m.active = i
			m.cursor = 0
			return
		}
	}
}

func (m *Model) NextSection() {
	if len(m.sections) == 0 {
		return
	}
	m.active = (m.active + 1) % len(m.sections)
	m.cursor = 0
}

// Selected returns the section key and button id under the cursor.
func (m Model) Selected() (string, int, bool) {
	buttons := m.buttons()
	if len(buttons) == 0 {
		return "", 0, false
	}
	return m.ActiveKey(), buttons[m.cursor].ID, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			m.cursor--
		case key.Matches(msg, keys.Right):
			m.cursor++
		case key.Matches(msg, keys.Up):
			m.cursor -= perRow
		case key.Matches(msg, keys.Down):
			m.cursor += perRow
		}
		m.clampCursor()
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.sections) == 0 {
		return ""
	}
	section := m.sections[m.active]
	header := theme.Title.Render(section.Name) + "  " +
		theme.Muted.Render(fmt.Sprintf("[%s] %d buttons", section.Key, len(section.Buttons)))

	if len(section.Buttons) == 0 {
		body := theme.Muted.Render("No buttons yet. Open the palette with : and run generate <count>.")
		return theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))
	}

	var rows []string
	for start := 0; start < len(section.Buttons); start += perRow {
		end := min(start+perRow, len(section.Buttons))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, renderButton(section.Buttons[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(rows, "\n")))
}

func renderButton(b paneldto.ButtonOutput, selected bool) string {
	style := theme.Button
	if b.Armed {
		style = theme.ButtonArmed
	}
	if selected {
		style = style.BorderForeground(theme.Lavender)
	}
	return style.Render(fmt.Sprintf("#%d %d", b.ID, b.Value))
}

func (m Model) buttons() []paneldto.ButtonOutput {
	if m.active < 0 || m.active >= len(m.sections) {
		return nil
	}
	return m.sections[m.active].Buttons
}

func (m *Model) clampCursor() {
	n := len(m.buttons())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}
