// Package tui renders the contact book session either as a Bubble Tea
// terminal UI or as plain line-in/line-out text.
package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/phonebook/internal/bot"
)

// Display runs one bot session to completion.
type Display interface {
	Run(ctx context.Context) error
}

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Input      io.Reader    // Input source (default: os.Stdin).
	Writer     io.Writer    // Output destination (default: os.Stdout).
	ForcePlain bool         // Force plain text even if TTY.
	Prompt     string       // Input prompt shown each iteration.
	Session    *bot.Session // Session to drive.
}

// NewDisplay returns a TUI display when stdout is a TTY, or a plain text
// display otherwise. ForcePlain overrides TTY detection. Plain mode is
// the canonical transcript; the TUI restyles it without changing any
// command wording.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return &PlainDisplay{in: opts.Input, w: opts.Writer, prompt: opts.Prompt, session: opts.Session}
	}

	return &TUIDisplay{in: opts.Input, w: opts.Writer, prompt: opts.Prompt, session: opts.Session}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay runs the stock prompt/read/print loop.
type PlainDisplay struct {
	in      io.Reader
	w       io.Writer
	prompt  string
	session *bot.Session
}

// Run drives the session with the plain run loop.
func (d *PlainDisplay) Run(ctx context.Context) error {
	return bot.Run(ctx, d.in, d.w, d.session, d.prompt)
}

// TUIDisplay runs the session inside a Bubble Tea program.
// Falls back to PlainDisplay if the TUI program fails to start.
type TUIDisplay struct {
	in      io.Reader
	w       io.Writer
	prompt  string
	session *bot.Session
}

// Run starts the Bubble Tea program and blocks until the session stops.
// A clean StopSignal shutdown returns nil; an unclassified session
// failure is returned for the caller to exit non-zero on.
func (d *TUIDisplay) Run(ctx context.Context) error {
	model := NewModel(d.session, d.prompt)
	p := tea.NewProgram(model,
		tea.WithInput(d.in),
		tea.WithOutput(d.w),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		// Fall back to plain text for the rest of the session.
		plain := &PlainDisplay{in: d.in, w: d.w, prompt: d.prompt, session: d.session}
		return plain.Run(ctx)
	}

	if m, ok := final.(Model); ok && m.fatal != nil {
		return m.fatal
	}
	return nil
}
