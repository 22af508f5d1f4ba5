package ui

import "github.com/charmbracelet/lipgloss"

// Base ANSI colors only, so the palette reads on light and dark terminals.
var (
	// TitleStyle (cyan) for help section titles
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle (green) for arguments and usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle (bright black) for descriptions
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle (yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// PromptStyle (green) for the terminal prompt marker
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	// ErrorStyle (red) for failures
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)
