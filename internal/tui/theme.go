package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorSubtle  = lipgloss.Color("#a6adc8")
	colorBorder  = lipgloss.Color("#45475a")
	colorAccent  = lipgloss.Color("#b4befe")
	colorTitle   = lipgloss.Color("#74c7ec")
	colorCorrect = lipgloss.Color("#a6e3a1")
	colorWrong   = lipgloss.Color("#f38ba8")
	colorWarning = lipgloss.Color("#fab387")

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle  = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle  = lipgloss.NewStyle().Foreground(colorWrong).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(colorWarning)

	correctStyle = lipgloss.NewStyle().Foreground(colorCorrect).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(colorWrong).Bold(true)

	cardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Foreground(colorText).
		Padding(1, 3).
		Width(56).
		Align(lipgloss.Center)

	cardFlippedStyle = cardStyle.BorderForeground(colorAccent)
)
