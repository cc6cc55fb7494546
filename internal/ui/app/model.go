package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	countdowndto "trainer/internal/modules/countdown/dto"
	paneldto "trainer/internal/modules/panel/dto"
	"trainer/internal/ui/components"
	"trainer/internal/ui/guide"
	"trainer/internal/ui/theme"
	panelview "trainer/internal/ui/views/panel"
	timerview "trainer/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type countdownPort interface {
	Start()
	Stop()
	Reset()
	Toggle()
	Tick(msg countdowndto.TickMsg) bool
	SetDuration(raw string) error
	Snapshot() countdowndto.SnapshotOutput
}

type panelPort interface {
	Sections() []paneldto.SectionOutput
	Generate(sectionKey, count string) (paneldto.SectionOutput, error)
	AddSection(name, count string) (paneldto.SectionOutput, error)
	DeleteSection(key string) error
	Activate(sectionKey string, buttonID int) (paneldto.ActivateOutput, error)
}

type accountPort interface {
	Logout(ctx context.Context) error
}

// boardPort exposes what the countdown last rendered.
type boardPort interface {
	Display() string
	Result() string
	Expirations() int
}

// tickSource hands back the tick commands scheduled by the last engine call.
type tickSource interface {
	Drain() tea.Cmd
}

// ─── async messages ───────────────────────────────────────────────────────────

type loggedOutMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Toggle   key.Binding
	Reset    key.Binding
	Move     key.Binding
	Activate key.Binding
	Section  key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Move:     key.NewBinding(key.WithKeys("left", "right", "up", "down", "h", "l", "k", "j"), key.WithHelp("←/→/↑/↓", "select button")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Section:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Activate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.Move, k.Activate, k.Section},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Every countdown and panel call happens
// inside Update, so the engine only ever sees this one goroutine.
type Model struct {
	countdown countdownPort
	board     boardPort
	ticks     tickSource
	panel     panelPort
	account   accountPort

	timerView timerview.Model
	panelView panelview.Model

	greeting    string
	keys        keyMap
	help        help.Model
	showHelp    bool
	guide       string
	palette     components.Palette
	status      string
	expirations int
	width       int
	height      int
}

func NewModel(greeting string, countdown countdownPort, board boardPort, ticks tickSource, panel panelPort, account accountPort) Model {
	m := Model{
		countdown: countdown,
		board:     board,
		ticks:     ticks,
		panel:     panel,
		account:   account,
		timerView: timerview.New(),
		panelView: panelview.New(),
		greeting:  greeting,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
	m.panelView.SetSections(panel.Sections())
	m.refreshTimer()
	m.expirations = board.Expirations()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.timerView, _ = m.timerView.Update(msg)
		m.panelView, _ = m.panelView.Update(msg)
		m.guide = ""
		if m.showHelp {
			m.ensureGuide()
		}

	case countdowndto.TickMsg:
		m.countdown.Tick(msg)

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "signed out"
		return m, tea.Quit

	case components.PaletteSubmitMsg:
		cmds = append(cmds, m.executePalette(msg.Input))

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		// The palette takes keyboard input while open; ticks and resizes above
		// still reach the countdown and views.
		if m.palette.Visible() {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.countdown.Toggle()
		case key.Matches(msg, m.keys.Reset):
			m.countdown.Reset()
			m.status = "reset"
		case key.Matches(msg, m.keys.Activate):
			m.activateSelected()
		case key.Matches(msg, m.keys.Section):
			m.panelView.NextSection()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			m.ensureGuide()
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.Move):
			m.panelView, _ = m.panelView.Update(msg)
		}

	default:
		if m.palette.Visible() {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	m.refreshTimer()
	if n := m.board.Expirations(); n != m.expirations {
		m.expirations = n
		m.status = "time's up"
	}
	cmds = append(cmds, m.ticks.Drain())
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	sectionBar := m.renderSectionBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(sectionBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		body := m.guide
		if body == "" {
			body = guide.Markdown
		}
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(body + "\n" + m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = lipgloss.JoinVertical(lipgloss.Left, m.timerView.View(), m.panelView.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sectionBar, content, statusBar)
}

func (m Model) renderSectionBar() string {
	sections := m.panelView.Sections()
	active := m.panelView.ActiveKey()
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Key == active {
			parts = append(parts, theme.Hot.Render(" "+s.Name+" "))
		} else {
			parts = append(parts, theme.Muted.Render(" "+s.Name+" "))
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "trainer  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.greeting != "" {
		left = theme.Hot.Render(m.greeting) + "  " + left
	}
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m *Model) executePalette(input string) tea.Cmd {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "start":
		m.countdown.Start()
		m.status = "started"

	case "stop":
		m.countdown.Stop()
		m.status = "stopped"

	case "reset":
		m.countdown.Reset()
		m.status = "reset"

	case "duration":
		if len(parts) != 2 {
			m.status = "usage: duration <seconds>"
			return nil
		}
		if err := m.countdown.SetDuration(parts[1]); err != nil {
			m.status = err.Error()
			return nil
		}
		m.status = "duration set to " + parts[1] + "s"

	case "generate":
		if len(parts) != 2 {
			m.status = "usage: generate <count>"
			return nil
		}
		out, err := m.panel.Generate(m.panelView.ActiveKey(), parts[1])
		if err != nil {
			m.status = err.Error()
			return nil
		}
		m.panelView.SetSections(m.panel.Sections())
		m.status = fmt.Sprintf("%d buttons in %s", len(out.Buttons), out.Name)

	case "section:add":
		if len(parts) < 3 {
			m.status = "usage: section:add <name> <count>"
			return nil
		}
		name := strings.Join(parts[1:len(parts)-1], " ")
		out, err := m.panel.AddSection(name, parts[len(parts)-1])
		if err != nil {
			m.status = err.Error()
			return nil
		}
		m.panelView.SetSections(m.panel.Sections())
		m.panelView.Focus(out.Key)
		m.status = "added section " + out.Name

	case "section:delete":
		target := m.panelView.ActiveKey()
		if len(parts) >= 2 {
			target = parts[1]
		}
		if err := m.panel.DeleteSection(target); err != nil {
			m.status = err.Error()
			return nil
		}
		m.panelView.SetSections(m.panel.Sections())
		m.status = "deleted section " + target

	case "logout":
		return m.logoutCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) activateSelected() {
	sectionKey, id, ok := m.panelView.Selected()
	if !ok {
		m.status = "no button selected"
		return
	}
	out, err := m.panel.Activate(sectionKey, id)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.panelView.SetSections(m.panel.Sections())
	m.status = fmt.Sprintf("button #%d → %d (%s)", out.Button.ID, out.Button.Value, out.Command)
}

func (m *Model) refreshTimer() {
	m.timerView.SetState(m.board.Display(), m.board.Result(), m.countdown.Snapshot())
}

func (m *Model) ensureGuide() {
	if m.guide != "" {
		return
	}
	rendered, err := guide.Render("dark", max(m.width-4, 0))
	if err != nil {
		m.status = "help: " + err.Error()
		return
	}
	m.guide = rendered
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		if m.account == nil {
			return loggedOutMsg{err: fmt.Errorf("account adapter not configured")}
		}
		return loggedOutMsg{err: m.account.Logout(context.Background())}
	}
}
