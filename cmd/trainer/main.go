package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"trainer/internal/bootstrap"
	"trainer/internal/platform/config"
	"trainer/internal/platform/logging"
	"trainer/internal/ui/guide"
)

type globalOptions struct {
	dataDir  string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "trainer",
		Short:         "Interval countdown driven by counter buttons",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory (default $TRAINER_DATA_DIR or the user config dir)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newFormatCmd(opts))
	root.AddCommand(newGuideCmd())
	root.AddCommand(newSectionsCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newAccountCmd(opts))
	return root
}

// loadApp builds the application. The TUI logs to a file so the alt screen
// stays clean; every other command logs to stderr.
func loadApp(opts *globalOptions, toFile bool) (*bootstrap.App, func(), error) {
	cfg, err := config.New(opts.dataDir)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Settings.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}

	logger := logging.Console(os.Stderr, level)
	var logFile io.Closer
	if toFile {
		logger, logFile, err = logging.File(cfg.LogPath, level)
		if err != nil {
			return nil, nil, err
		}
	}

	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, nil, err
	}
	cleanup := func() {
		if err := app.Close(); err != nil {
			logger.Warn().Err(err).Msg("close app")
		}
		if logFile != nil {
			_ = logFile.Close()
		}
	}
	return app, cleanup, nil
}

func newTUICmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive trainer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts, true)
			if err != nil {
				return err
			}
			defer cleanup()
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	var duration time.Duration
	run := &cobra.Command{
		Use:   "run",
		Short: "Run one countdown in the terminal; Ctrl+C stops it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seconds := ""
			if cmd.Flags().Changed("duration") {
				if duration <= 0 || duration%time.Second != 0 {
					return fmt.Errorf("--duration %s: must be a positive whole number of seconds", duration)
				}
				seconds = strconv.Itoa(int(duration / time.Second))
			}

			app, cleanup, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer cleanup()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			handler := app.CountdownCLI(out, isTerminal(out))
			res, err := handler.Run(ctx, seconds)
			if err != nil {
				return err
			}
			if res.Expired {
				_, _ = fmt.Fprintln(out, "\ntime's up")
				return nil
			}
			_, _ = fmt.Fprintf(out, "stopped after %s\n", res.Elapsed.Truncate(100*time.Millisecond))
			for i, at := range res.EndTimes {
				_, _ = fmt.Fprintf(out, "stop #%d at %s\n", i+1, at)
			}
			return nil
		},
	}
	run.Flags().DurationVar(&duration, "duration", 0, "countdown length in whole seconds, e.g. 90s or 2m (default from settings)")
	return run
}

func newFormatCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format <seconds>",
		Short: "Print seconds as HH:MM:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer cleanup()
			out, err := app.CountdownCLI(nil, false).Format(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show keys, button rules and palette commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			style, width := "notty", 80
			if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				style = "dark"
				if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
					width = w
				}
			}
			rendered, err := guide.Render(style, width)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(out, rendered)
			return nil
		},
	}
}

func newSectionsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the configured panel sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer cleanup()
			panel, err := app.PanelCLI()
			if err != nil {
				return err
			}
			for _, s := range panel.Sections() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d buttons\n", s.Key, s.Name, len(s.Buttons))
			}
			return nil
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Settings file commands"}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write settings.yaml with the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(opts.dataDir)
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.DataDir, config.SettingsFileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveSettings(path, cfg.Settings); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}

func newAccountCmd(opts *globalOptions) *cobra.Command {
	account := &cobra.Command{Use: "account", Short: "Sign up, sign in and out"}

	var username, email, password, confirm string
	signup := &cobra.Command{
		Use:   "signup --username <name> --email <email>",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if password == "" {
				if password, err = promptPassword(cmd, "Password: "); err != nil {
					return err
				}
			}
			if confirm == "" {
				if confirm, err = promptPassword(cmd, "Confirm password: "); err != nil {
					return err
				}
			}
			app, cleanup, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer cleanup()
			out, err := app.AccountCLI.Signup(cmd.Context(), username, email, password, confirm)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account created for %s, you can now sign in\n", out.Username)
			return nil
		},
	}
	signup.Flags().StringVar(&username, "username", "", "username (at least 3 characters)")
	signup.Flags().StringVar(&email, "email", "", "email address")
	signup.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	signup.Flags().StringVar(&confirm, "confirm", "", "password confirmation (prompted when omitted)")

	var loginUser, loginPassword string
	login := &cobra.Command{
		Use:   "login --username <name>",
		Short: "Sign in (try demo / demo123)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if loginPassword == "" {
				if loginPassword, err = promptPassword(cmd, "Password: "); err != nil {
					return err
				}
			}
			app, cleanup, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer cleanup()
			out, err := app.AccountCLI.Login(cmd.Context(), loginUser, loginPassword)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Greeting)
			return nil
		},
	}
	login.Flags().StringVar(&loginUser, "username", "", "username")
	login.Flags().StringVar(&loginPassword, "password", "", "password (prompted when omitted)")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := app.AccountCLI.Logout(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer cleanup()
			out, err := app.AccountCLI.WhoAmI(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (since %s)\n", out.Username, out.LoggedInAt.Local().Format(time.DateTime))
			return nil
		},
	}

	account.AddCommand(signup, login, logout, whoami)
	return account
}

// promptPassword reads a password without echo. It refuses to prompt when
// stdin is not a terminal so scripts fail fast instead of hanging.
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("password required: pass --password or run in a terminal")
	}
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)
	raw, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
