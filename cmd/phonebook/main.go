// Command phonebook is an interactive console contact book: it reads
// whitespace-delimited commands from the console and maintains an
// in-memory username→phone mapping for the duration of the run.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/phonebook/internal/bot"
	"github.com/smileynet/phonebook/internal/config"
	"github.com/smileynet/phonebook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	exitSuccess = 0
	exitFatal   = 1
	exitSetup   = 2
)

// CLI is the top-level command structure for phonebook.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Run     RunCmd           `cmd:"" default:"withargs" help:"Start the interactive contact book."`
}

// RunCmd starts a bot session and runs it until a stop command.
type RunCmd struct {
	NoTUI  bool   `help:"Force plain line output even if stdout is a TTY." default:"false"`
	Prompt string `help:"Override the input prompt." default:""`
	Config string `help:"Extra config file, applied over the default layers." type:"path" default:""`
}

// Run executes the run command.
func (r *RunCmd) Run() error {
	cfg, err := loadConfig(r.Config)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	// Apply CLI flag overrides.
	if r.Prompt != "" {
		cfg.UI.Prompt = r.Prompt
	}
	if r.NoTUI {
		cfg.UI.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	display := tui.NewDisplay(tui.DisplayOptions{
		ForcePlain: cfg.UI.Plain,
		Prompt:     cfg.UI.Prompt,
		Session:    bot.NewSession(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := display.Run(ctx); err != nil {
		return &sessionError{err: err}
	}
	return nil
}

// sessionError marks a failure that aborted a running session, as
// opposed to a setup problem before the loop started.
type sessionError struct {
	err error
}

func (e *sessionError) Error() string {
	return e.err.Error()
}

func (e *sessionError) Unwrap() error {
	return e.err
}

// loadConfig loads layered config from user and project paths with env
// overrides, plus an optional extra path from the --config flag.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/phonebook/config.yaml"),
		".phonebook/config.yaml",
	}
	if extra != "" {
		paths = append(paths, extra)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// exitCode maps a run outcome to a process exit code. Session failures
// (the fail-fast path for unclassified errors) exit with exitFatal;
// config and flag problems exit with exitSetup.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sessionError
	if errors.As(err, &se) {
		return exitFatal
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
