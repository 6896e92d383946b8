package tui

import "github.com/charmbracelet/lipgloss"

// EchoStyle styles the echoed command line in the transcript.
func EchoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}).
		Bold(true)
}

// OutputStyle styles successful command output.
func OutputStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"})
}

// FarewellStyle styles the goodbye line printed on shutdown.
func FarewellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}).
		Bold(true)
}

// HintStyle styles the key-binding hint under the input line.
func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
}
