/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: styles.go
Description: Terminal styles for command output.
*/

package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBorder = lipgloss.Color("#30363d")
	colorMuted  = lipgloss.Color("#8b949e")
	colorAccent = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorAmber  = lipgloss.Color("#d29922")
	colorRed    = lipgloss.Color("#f85149")

	plainStyle   = lipgloss.NewStyle()
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	tagStyle     = lipgloss.NewStyle().Foreground(colorAmber)
	okStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	failStyle    = lipgloss.NewStyle().Foreground(colorRed)

	codeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// banner renders a command title underlined to its width
func banner(title string) string {
	rule := strings.Repeat("=", lipgloss.Width(title))
	return titleStyle.Render(title) + "\n" + mutedStyle.Render(rule) + "\n"
}

// column pads text to a fixed width before styling it
func column(style lipgloss.Style, width int, text string) string {
	return style.Width(width).Render(text)
}
