// Package cli provides the interactive intake prompter and styled terminal
// output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7B68EE")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	ScalesIcon  = "⚖️"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the scales icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(ScalesIcon + " " + title)
}

// FormatPrompt formats a prompt message.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + ": ")
}
