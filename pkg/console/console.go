// Package console provides styled terminal output helpers.
//
// All user-facing status lines go through the Format* helpers so that
// symbols and colors stay consistent across commands. Styling degrades
// to plain text automatically when output is not a terminal.
package console

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// FormatErrorMessage formats an error message with a leading cross mark.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// FormatWarningMessage formats a warning message with a leading warning sign.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// FormatSuccessMessage formats a success message with a leading check mark.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render("ℹ " + msg)
}

// FormatTitle formats a section title.
func FormatTitle(msg string) string {
	return titleStyle.Render(msg)
}
