package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook/internal/bot"
	"github.com/smileynet/phonebook/internal/command"
)

// transcriptEntry is one handled input line and the text it produced,
// kept for display only. Entries are never recalled or re-executed.
type transcriptEntry struct {
	line   string
	output string
}

// Model is the Bubble Tea model for the contact book REPL: a transcript
// of previous commands above a single text input line.
type Model struct {
	session    *bot.Session
	input      textinput.Model
	keys       replKeys
	prompt     string
	transcript []transcriptEntry
	farewell   string
	fatal      error
	done       bool
}

// NewModel creates a Model driving the given session.
func NewModel(session *bot.Session, prompt string) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()

	return Model{
		session: session,
		input:   ti,
		keys:    ReplKeyMap(),
		prompt:  prompt,
	}
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			// Ctrl+C behaves like typing the close command.
			return m.submit("close")
		case key.Matches(msg, m.keys.Submit):
			line := m.input.Value()
			if strings.TrimSpace(line) == "" {
				// An empty line is fatal in the plain loop; interactively
				// there is nothing to dispatch yet, so keep waiting.
				return m, nil
			}
			return m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one input line through the session and folds the outcome
// into the transcript, quitting on stop or fatal failure.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	m.input.Reset()

	reply, err := m.session.HandleLine(line)
	if err != nil {
		var stop *command.StopSignal
		if errors.As(err, &stop) {
			m.farewell = stop.Message
			m.done = true
			return m, tea.Quit
		}
		m.fatal = err
		m.done = true
		return m, tea.Quit
	}

	m.transcript = append(m.transcript, transcriptEntry{line: line, output: reply.String()})
	return m, nil
}

// View renders the transcript above the input line, or the shutdown text
// once the session has ended.
func (m Model) View() string {
	var b strings.Builder

	for _, entry := range m.transcript {
		b.WriteString(EchoStyle().Render(m.prompt + entry.line))
		b.WriteString("\n")
		b.WriteString(OutputStyle().Render(entry.output))
		b.WriteString("\n")
	}

	if m.done {
		if m.fatal != nil {
			b.WriteString(bot.FatalMessage(m.fatal))
			b.WriteString("\n")
			return b.String()
		}
		b.WriteString(FarewellStyle().Render(m.farewell))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HintStyle().Render(hintLine(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// hintLine renders the short help for the REPL bindings.
func hintLine(k replKeys) string {
	parts := make([]string, 0, len(k.ShortHelp()))
	for _, binding := range k.ShortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
