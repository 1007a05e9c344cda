package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	StaffStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	ClefLabelStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	OptionKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	OptionStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	CorrectStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	IncorrectStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	StatsStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ModeBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ModeOffStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)
