package tui

import (
	"github.com/charmbracelet/lipgloss"
	"modalpicker/internal/tui/theme"
)

var (
	TitleStyle     = theme.Title
	StatusBarStyle = theme.StatusBar
	HelpStyle      = theme.HelpHint

	LabelStyle = lipgloss.NewStyle().Foreground(theme.TextMuted).Width(10)
	ValueStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.TextBright)

	CancelledStyle = theme.Error
	HistoryStyle   = theme.Muted
)
