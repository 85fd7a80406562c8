package shared

import (
	"github.com/charmbracelet/lipgloss"
	"modalpicker/internal/tui/theme"
)

// Date picker styles assume the white content surface the modal forces.
var (
	DatePickerMonthStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.Ink)

	DatePickerDayHeaderStyle = lipgloss.NewStyle().
					Foreground(theme.Dim).
					Bold(true)

	DatePickerDayStyle = lipgloss.NewStyle().
				Foreground(theme.Ink)

	DatePickerTodayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0969DA")).
				Bold(true)

	DatePickerCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#0969DA")).
				Foreground(theme.White).
				Bold(true)

	DatePickerExamplesStyle = lipgloss.NewStyle().
				Foreground(theme.Dim).
				Italic(true)

	DatePickerHelpStyle = lipgloss.NewStyle().
				Foreground(theme.Dim)

	DatePickerErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CF222E"))
)

// List picker styles, same surface.
var (
	ListItemStyle = lipgloss.NewStyle().
			Foreground(theme.Ink)

	ListSelectedStyle = lipgloss.NewStyle().
				Foreground(theme.Ink).
				Background(theme.Tint).
				Bold(true)

	ListMutedStyle = lipgloss.NewStyle().
			Foreground(theme.Dim).
			Italic(true)
)
