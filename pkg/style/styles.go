package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	PackageNameStyle = lipgloss.NewStyle().
				Foreground(HeadingColor).
				Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)
)

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
