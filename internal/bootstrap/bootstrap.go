package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	accountinadapter "trainer/internal/modules/account/adapter/in"
	accountoutadapter "trainer/internal/modules/account/adapter/out"
	accountservice "trainer/internal/modules/account/service"
	accountusecase "trainer/internal/modules/account/usecase"
	countdowninadapter "trainer/internal/modules/countdown/adapter/in"
	countdownoutadapter "trainer/internal/modules/countdown/adapter/out"
	countdowndomain "trainer/internal/modules/countdown/domain"
	countdownin "trainer/internal/modules/countdown/port/in"
	countdownservice "trainer/internal/modules/countdown/service"
	countdownusecase "trainer/internal/modules/countdown/usecase"
	panelinadapter "trainer/internal/modules/panel/adapter/in"
	paneloutadapter "trainer/internal/modules/panel/adapter/out"
	panelin "trainer/internal/modules/panel/port/in"
	panelservice "trainer/internal/modules/panel/service"
	panelusecase "trainer/internal/modules/panel/usecase"
	"trainer/internal/platform/clock"
	"trainer/internal/platform/config"
	"trainer/internal/platform/id"
	uiapp "trainer/internal/ui/app"
)

// App holds the wiring shared by every command. Countdowns are built per
// front end because the TUI and the CLI deliver ticks differently.
type App struct {
	Config     config.Config
	Logger     zerolog.Logger
	AccountCLI accountinadapter.CLIHandler
	AccountTUI accountinadapter.TUIHandler

	clock clock.Clock
	users *accountoutadapter.SQLiteUserStore
}

func New(cfg config.Config, logger zerolog.Logger) (*App, error) {
	return newApp(cfg, logger, clock.System(), 0)
}

func newApp(cfg config.Config, logger zerolog.Logger, clk clock.Clock, hashCost int) (*App, error) {
	users, err := accountoutadapter.NewSQLiteUserStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new user store: %w", err)
	}
	accountUC := accountusecase.NewInteractor(
		accountservice.NewAccountService(clk, id.UUID{}, users, hashCost, logger),
		accountoutadapter.NewFileActiveUserStore(cfg.ActiveUserPath),
	)
	return &App{
		Config:     cfg,
		Logger:     logger,
		AccountCLI: accountinadapter.NewCLIHandler(accountUC),
		AccountTUI: accountinadapter.NewTUIHandler(accountUC),
		clock:      clk,
		users:      users,
	}, nil
}

func (a *App) Close() error {
	return a.users.Close()
}

// CountdownCLI builds a headless countdown that prints to out. With inPlace
// the display line is overwritten instead of appended.
func (a *App) CountdownCLI(out io.Writer, inPlace bool) countdowninadapter.CLIHandler {
	queue := countdownoutadapter.NewLoopScheduler()
	engine := countdownservice.NewEngine(
		a.clock,
		queue,
		countdownoutadapter.NewWriterRenderer(out, inPlace),
		countdownoutadapter.NewLogNotifier(a.Logger),
		a.Logger,
		a.countdownOptions(),
	)
	return countdowninadapter.NewCLIHandler(countdownusecase.NewInteractor(engine, a.clock, queue))
}

// PanelCLI exposes the configured layout. Its countdown has no renderer.
func (a *App) PanelCLI() (panelinadapter.CLIHandler, error) {
	engine := countdownservice.NewEngine(a.clock, nil, nil, nil, a.Logger, a.countdownOptions())
	panelUC, err := a.newPanel(countdownusecase.NewInteractor(engine, a.clock, nil))
	if err != nil {
		return panelinadapter.CLIHandler{}, err
	}
	return panelinadapter.NewCLIHandler(panelUC), nil
}

func (a *App) newPanel(countdown countdownin.Usecase) (panelin.Usecase, error) {
	seeds := make([]panelservice.Seed, 0, len(a.Config.Settings.Sections))
	for _, s := range a.Config.Settings.Sections {
		seeds = append(seeds, panelservice.Seed{Name: s.Name, Buttons: s.Buttons})
	}
	panel, err := panelservice.NewPanel(seeds, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("new panel: %w", err)
	}
	return panelusecase.NewInteractor(panel, paneloutadapter.NewCountdownBridge(countdown)), nil
}

func (a *App) countdownOptions() countdownservice.Options {
	return countdownservice.Options{
		Duration:     a.Config.Settings.Duration,
		TickInterval: a.Config.Settings.TickInterval,
	}
}

// NewTUIModel wires the interactive screen for a signed-in user.
func NewTUIModel(ctx context.Context, app *App, bell io.Writer) (uiapp.Model, error) {
	user, err := app.AccountTUI.RequireAuth(ctx)
	if err != nil {
		return uiapp.Model{}, err
	}

	ticks := countdownoutadapter.NewTeaScheduler()
	initial := countdowndomain.Format(int(app.Config.Settings.Duration / time.Second))
	board := countdownoutadapter.NewBoard(initial,
		countdownoutadapter.NewBellNotifier(bell, countdownoutadapter.NewLogNotifier(app.Logger)),
		app.Logger,
	)
	engine := countdownservice.NewEngine(app.clock, ticks, board, board, app.Logger, app.countdownOptions())
	countdownUC := countdownusecase.NewInteractor(engine, app.clock, nil)
	panelUC, err := app.newPanel(countdownUC)
	if err != nil {
		return uiapp.Model{}, err
	}

	app.Logger.Info().Str("user", user.Username).Msg("tui session started")
	return uiapp.NewModel(
		user.Greeting,
		countdowninadapter.NewTUIHandler(countdownUC),
		board,
		ticks,
		panelinadapter.NewTUIHandler(panelUC),
		app.AccountTUI,
	), nil
}

func RunTUI(ctx context.Context, app *App) error {
	model, err := NewTUIModel(ctx, app, os.Stderr)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
