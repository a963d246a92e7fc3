package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/logging"
	"github.com/thenoetrevino/tally/internal/ui/prompts"
	"golang.org/x/term"
)

var errInvalidConfig = errors.New("invalid configuration")

type configKey struct{}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Tally - a terminal tracker for epics and stories",
		Long: `Tally is a single-user terminal tracker. Epics own stories; every change
is saved to a local document before the next page is drawn.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runInteractive,
	}

	flags := cmd.PersistentFlags()
	flags.String("backend", "", "Storage backend: json, sqlite or memory")
	flags.String("db", "", "Path of the database document")
	flags.String("prompts", "", "Prompt style: line or form")
	flags.Bool("no-clear", false, "Do not clear the screen before each page")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(newDumpCmd(), newReportCmd(), newConfigCmd())
	return cmd
}

// Execute runs the root command until it finishes or the process is signalled.
func Execute() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

// setup resolves configuration (file, env, then flags) and starts logging
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("db") {
		cfg.DataPath, _ = flags.GetString("db")
	}
	if flags.Changed("prompts") {
		cfg.PromptStyle, _ = flags.GetString("prompts")
	}
	if flags.Changed("no-clear") {
		noClear, _ := flags.GetBool("no-clear")
		cfg.ClearScreen = !noClear
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	if err := logging.Init(cfg.StateDir, level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	slog.Debug("configuration loaded",
		"backend", cfg.Backend,
		"data_path", cfg.DataFile(),
		"prompt_style", cfg.PromptStyle)

	cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
	return nil
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// openStore opens the configured backend; callers close the repository
func openStore(ctx context.Context, cfg *config.Config) (*database.Repository, error) {
	backend, err := database.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	return database.Open(ctx, backend, cfg.DataFile())
}

func closeStore(repo *database.Repository) {
	if err := repo.Close(); err != nil {
		slog.Error("Error closing database", "error", err)
	}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)

	repo, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore(repo)

	opts := []app.Option{
		app.WithInput(cmd.InOrStdin()),
		app.WithOutput(cmd.OutOrStdout()),
		app.WithClearScreen(cfg.ClearScreen),
		app.WithLogger(logging.Logger),
	}

	// huh forms need a real terminal; piped input falls back to line prompts
	if cfg.PromptStyle == config.PromptForm && cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, app.WithPrompter(prompts.NewFormPrompter()))
	} else if cfg.PromptStyle == config.PromptForm {
		slog.Info("stdin is not a terminal, using line prompts")
	}

	return app.New(repo, opts...).Run(ctx)
}
