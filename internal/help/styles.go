// Package help styling definitions.
// This file defines lipgloss styles for consistent terminal output.

package help

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for help rendering.
type Styles struct {
	// Header is the style for section headers (bold).
	Header lipgloss.Style

	// Flag is the style for flag and subcommand names (cyan).
	Flag lipgloss.Style

	// Placeholder is the style for value placeholders (yellow).
	Placeholder lipgloss.Style
}

// DefaultStyles returns the standard styles for help output.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
	}
}

// PlainStyles returns styles with no color or emphasis, for commands that
// disable colored help and for stable test output.
func PlainStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle(),
		Flag:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle(),
	}
}
