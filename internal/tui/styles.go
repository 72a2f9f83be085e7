package tui

import "github.com/charmbracelet/lipgloss"

var (
	green  = lipgloss.Color("#00FF00")
	yellow = lipgloss.Color("#FFFF00")
	red    = lipgloss.Color("#FF0000")
	cyan   = lipgloss.Color("#00FFFF")
	gray   = lipgloss.Color("#808080")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan)

	appliedStyle = lipgloss.NewStyle().
			Foreground(green)

	skippedStyle = lipgloss.NewStyle().
			Foreground(gray)

	failedStyle = lipgloss.NewStyle().
			Foreground(red)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(yellow)

	boundsStyle = lipgloss.NewStyle().
			Foreground(gray).
			Faint(true)

	barStyle = lipgloss.NewStyle().
			Foreground(green)

	barLowStyle = lipgloss.NewStyle().
			Foreground(red)

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(gray)
)
