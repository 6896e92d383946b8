package tui

import "github.com/charmbracelet/bubbles/key"

// replKeys holds key bindings for the REPL input line.
type replKeys struct {
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns the REPL bindings for the help line.
func (k replKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit}
}

// FullHelp returns the REPL bindings grouped for expanded help.
func (k replKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Quit}}
}

// ReplKeyMap returns the default REPL key bindings.
func ReplKeyMap() replKeys {
	return replKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "close"),
		),
	}
}
