package modal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"modalpicker/internal/tui/theme"
)

// Label is a single line of text in the header row.
type Label struct {
	Text       string
	TextColor  lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Align      lipgloss.Position
}

func (l *Label) render(width int, behind lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Width(width).
		Align(l.Align).
		Foreground(paint(l.TextColor, nil)).
		Background(paint(l.Background, behind))
	return style.Render(ansi.Truncate(l.Text, width, "…"))
}

// Button is a tappable header title.
type Button struct {
	Title      string
	TitleColor lipgloss.TerminalColor
	Background lipgloss.TerminalColor

	focused bool
	onTap   func(sender *Button)
}

// Tap delivers a tap to the button's handler.
func (b *Button) Tap() {
	if b == nil || b.onTap == nil {
		return
	}
	b.onTap(b)
}

// Focused reports whether enter would tap this button.
func (b *Button) Focused() bool {
	return b != nil && b.focused
}

func (b *Button) render(width int, behind lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(paint(b.TitleColor, nil)).
		Background(paint(b.Background, behind))
	if b.focused {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(ansi.Truncate(b.Title, width, "…"))
}

// paint resolves a transparent color to whatever is behind it.
func paint(c, behind lipgloss.TerminalColor) lipgloss.TerminalColor {
	if theme.IsClear(c) {
		if behind == nil {
			return lipgloss.NoColor{}
		}
		return behind
	}
	return c
}
