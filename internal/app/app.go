// Package app runs the interactive loop: render the top page, read one line,
// turn it into an action and hand that to the navigator.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/navigator"
	"github.com/thenoetrevino/tally/internal/ui/prompts"
)

const clearSequence = "\033[2J\033[H"

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF5F87"))

// App owns the navigator and the terminal streams for one session.
type App struct {
	nav         *navigator.Navigator
	in          *bufio.Reader
	out         io.Writer
	clearScreen bool
	logger      *slog.Logger
}

// New creates an App over db. Without options it reads stdin, writes stdout,
// clears the screen and asks questions with line prompts.
func New(db database.DataStore, opts ...Option) *App {
	cfg := &appConfig{
		in:          os.Stdin,
		out:         os.Stdout,
		clearScreen: true,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	in := bufio.NewReader(cfg.in)

	// line prompts share the loop's reader so buffered input is never lost
	prompter := cfg.prompter
	if prompter == nil {
		prompter = prompts.NewLinePrompter(in, cfg.out)
	}

	return &App{
		nav:         navigator.New(db, prompter),
		in:          in,
		out:         cfg.out,
		clearScreen: cfg.clearScreen,
		logger:      cfg.logger,
	}
}

// Run loops until the page stack is empty, input ends or ctx is cancelled.
// Errors from pages and actions are shown to the user and never end the loop.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, ok := a.nav.CurrentPage()
		if !ok {
			a.logger.Debug("page stack empty, exiting")
			return nil
		}

		if a.clearScreen {
			a.print(clearSequence)
		}

		// a page that fails to render still takes input, so "p" can leave it
		content, err := page.Render(ctx)
		if err != nil {
			if err := a.reportError(ctx, "Error rendering page", err); err != nil {
				return endOfSession(err)
			}
		} else {
			a.print(content)
		}

		line, err := a.readLine(ctx)
		if err != nil {
			return endOfSession(err)
		}

		action, err := page.HandleInput(ctx, line)
		if err != nil {
			if err := a.reportError(ctx, "Error getting user input", err); err != nil {
				return endOfSession(err)
			}
			continue
		}
		if action == nil {
			continue
		}

		if err := a.nav.HandleAction(ctx, *action); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := a.reportError(ctx, "Error handling action", err); err != nil {
				return endOfSession(err)
			}
		}
	}
}

// readLine returns the next line without its terminator. Everything else,
// surrounding whitespace included, is passed through untouched. A final line
// without a newline is returned before io.EOF. Cancelling ctx returns
// ctx.Err() without waiting for the line.
func (a *App) readLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}

	resultCh := make(chan result, 1)
	go func() {
		line, err := a.in.ReadString('\n')
		resultCh <- result{line: line, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-resultCh:
	}

	// a line that raced with cancellation is dropped
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if res.err != nil && !(errors.Is(res.err, io.EOF) && res.line != "") {
		return "", res.err
	}
	line := strings.TrimSuffix(res.line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// reportError shows err and waits for an acknowledgment line. A non-nil
// result means the session is over.
func (a *App) reportError(ctx context.Context, prefix string, err error) error {
	a.logger.Error(strings.ToLower(prefix), "error", err)

	a.print("\n" + errorStyle.Render(prefix+": "+err.Error()) + "\n")
	a.print("Press Enter to continue...\n")

	_, readErr := a.readLine(ctx)
	return readErr
}

// endOfSession treats closed input as a normal exit
func endOfSession(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) print(s string) {
	_, _ = fmt.Fprint(a.out, s)
}
