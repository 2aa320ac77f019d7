// Package ui provides the console presentation layer for dashback:
// lipgloss styles, human-readable formatting, the summary block, and the
// interactive transfer progress view.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - Tokyo Night inspired
var (
	primaryColor = lipgloss.Color("#7aa2f7") // blue
	successColor = lipgloss.Color("#9ece6a") // green
	warningColor = lipgloss.Color("#e0af68") // yellow
	errorColor   = lipgloss.Color("#f7768e") // red
	dimColor     = lipgloss.Color("#565f89") // comment
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	summaryBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2)
)

// Header renders a section heading.
func Header(s string) string { return headerStyle.Render(s) }

// Success renders a success line.
func Success(s string) string { return successStyle.Render(s) }

// Warn renders a warning line.
func Warn(s string) string { return warningStyle.Render(s) }

// Error renders an error line.
func Error(s string) string { return errorStyle.Render(s) }
