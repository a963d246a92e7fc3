package app

import (
	"io"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/ui/prompts"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	in          io.Reader
	out         io.Writer
	prompter    prompts.Prompter
	clearScreen bool
	logger      *slog.Logger
}

// WithInput sets where user input lines are read from
func WithInput(r io.Reader) Option {
	return func(cfg *appConfig) {
		cfg.in = r
	}
}

// WithOutput sets where pages, prompts and errors are written
func WithOutput(w io.Writer) Option {
	return func(cfg *appConfig) {
		cfg.out = w
	}
}

// WithPrompter replaces the default line prompter, e.g. with huh forms
func WithPrompter(p prompts.Prompter) Option {
	return func(cfg *appConfig) {
		cfg.prompter = p
	}
}

// WithClearScreen toggles clearing the terminal before each render
func WithClearScreen(enabled bool) Option {
	return func(cfg *appConfig) {
		cfg.clearScreen = enabled
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
