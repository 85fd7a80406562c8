package datepicker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"modalpicker/internal/tui/shared"
)

// ErrInvalidDate is returned for text that matches none of the accepted forms.
var ErrInvalidDate = errors.New("invalid date format")

const weeks = 6

type mode int

const (
	calendarMode mode = iota
	textInputMode
)

// Model is a month-grid date picker. It always holds a date.
type Model struct {
	mode       mode
	date       time.Time // the selected day, under the cursor
	viewMonth  time.Time // first day of the month being shown
	textInput  textinput.Model
	background lipgloss.TerminalColor
	err        error
	now        func() time.Time
}

// New returns a picker positioned on today.
func New() Model {
	m := Model{
		mode:       calendarMode,
		background: lipgloss.NoColor{},
		now:        time.Now,
	}

	ti := textinput.New()
	ti.Placeholder = "2026-03-15, +5, tomorrow"
	ti.CharLimit = 20
	ti.Width = 24
	m.textInput = ti

	m.SetDate(m.now())
	return m
}

// Date returns the selected day at midnight local time.
func (m Model) Date() time.Time {
	return m.date
}

// SetDate moves the selection (and the visible month) to t.
func (m *Model) SetDate(t time.Time) {
	m.date = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	m.ensureCursorInView()
}

// SetBackground sets the surface color the grid is painted on.
func (m *Model) SetBackground(c lipgloss.TerminalColor) {
	m.background = c
}

// Background returns the surface color.
func (m Model) Background() lipgloss.TerminalColor {
	return m.background
}

// IsTyping returns true while the text entry is active
func (m Model) IsTyping() bool {
	return m.mode == textInputMode
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.mode == textInputMode {
		return m.updateTextInput(msg)
	}
	return m.updateCalendar(msg)
}

func (m Model) updateCalendar(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "i":
		m.mode = textInputMode
		m.err = nil
		m.textInput.SetValue(m.date.Format("2006-01-02"))
		m.textInput.CursorEnd()
		m.textInput.Focus()
		return m, textinput.Blink
	case "t":
		m.SetDate(m.now())
	case "h", "left":
		m.SetDate(m.date.AddDate(0, 0, -1))
	case "l", "right":
		m.SetDate(m.date.AddDate(0, 0, 1))
	case "k", "up":
		m.SetDate(m.date.AddDate(0, 0, -7))
	case "j", "down":
		m.SetDate(m.date.AddDate(0, 0, 7))
	case "-", "H", "pgup":
		m.SetDate(addMonths(m.date, -1))
	case "+", "=", "L", "pgdown":
		m.SetDate(addMonths(m.date, 1))
	}

	return m, nil
}

func (m Model) updateTextInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc":
		m.mode = calendarMode
		m.err = nil
		m.textInput.Blur()
		return m, nil
	case "enter":
		parsed, err := m.parseTextInput(m.textInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.SetDate(parsed)
		m.mode = calendarMode
		m.textInput.Blur()
		return m, nil
	default:
		m.textInput, cmd = m.textInput.Update(msg)
	}

	return m, cmd
}

func (m *Model) ensureCursorInView() {
	m.viewMonth = time.Date(m.date.Year(), m.date.Month(), 1, 0, 0, 0, 0, time.Local)
}

// addMonths moves by whole months, clamping the day to the target month's length.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := min(t.Day(), last)
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.Local)
}

func (m Model) parseTextInput(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	now := m.now()

	// Handle relative dates
	if strings.HasPrefix(input, "+") {
		days, err := strconv.Atoi(input[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
		}
		return now.AddDate(0, 0, days), nil
	}

	if strings.HasPrefix(input, "-") {
		days, err := strconv.Atoi(input[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
		}
		return now.AddDate(0, 0, -days), nil
	}

	switch strings.ToLower(input) {
	case "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	// Try full date format: 2026-03-15
	if parsed, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return parsed, nil
	}

	// Try short format: 03-15 (assumes current year)
	if parsed, err := time.Parse("01-02", input); err == nil {
		return time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
}

func (m Model) View() string {
	if m.mode == textInputMode {
		return m.viewTextInput()
	}
	return m.viewCalendar()
}

// surface paints s on the picker background.
func (m Model) surface(s lipgloss.Style) lipgloss.Style {
	return s.Background(m.background)
}

func (m Model) viewCalendar() string {
	var lines []string
	gap := m.surface(lipgloss.NewStyle()).Render(" ")

	// Month/Year header
	lines = append(lines, m.surface(shared.DatePickerMonthStyle).Render(m.viewMonth.Format("January 2006")))

	// Day headers
	dayHeaders := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	var header []string
	for _, day := range dayHeaders {
		header = append(header, m.surface(shared.DatePickerDayHeaderStyle).Render(day))
	}
	lines = append(lines, strings.Join(header, gap))

	startWeekday := int(m.viewMonth.Weekday())
	daysInMonth := m.viewMonth.AddDate(0, 1, -1).Day()

	// Start with offset for first day of month
	currentDay := 1 - startWeekday
	today := m.now()

	// Always six rows so the picker keeps its height across months.
	for week := 0; week < weeks; week++ {
		var cells []string
		for weekday := 0; weekday < 7; weekday++ {
			if currentDay < 1 || currentDay > daysInMonth {
				cells = append(cells, m.surface(lipgloss.NewStyle()).Render("  "))
			} else {
				date := time.Date(m.viewMonth.Year(), m.viewMonth.Month(), currentDay, 0, 0, 0, 0, time.Local)
				dayStr := fmt.Sprintf("%2d", currentDay)

				switch {
				case isSameDay(date, m.date):
					cells = append(cells, shared.DatePickerCursorStyle.Render(dayStr))
				case isSameDay(date, today):
					cells = append(cells, m.surface(shared.DatePickerTodayStyle).Render(dayStr))
				default:
					cells = append(cells, m.surface(shared.DatePickerDayStyle).Render(dayStr))
				}
			}
			currentDay++
		}
		lines = append(lines, strings.Join(cells, gap))
	}

	lines = append(lines, m.surface(shared.DatePickerHelpStyle).Render("hjkl move · t today · +/- month · i type"))

	return m.block(lines)
}

func (m Model) viewTextInput() string {
	var lines []string

	lines = append(lines, m.surface(shared.DatePickerMonthStyle).Render("Type a date"))
	lines = append(lines, "")
	lines = append(lines, m.textInput.View())
	lines = append(lines, "")

	if m.err != nil {
		lines = append(lines, m.surface(shared.DatePickerErrorStyle).Render(m.err.Error()))
	} else {
		lines = append(lines, m.surface(shared.DatePickerExamplesStyle).Render("2026-03-15, 03-15, +5, tomorrow"))
	}

	for len(lines) < weeks+2 {
		lines = append(lines, "")
	}
	lines = append(lines, m.surface(shared.DatePickerHelpStyle).Render("enter set · esc back to calendar"))

	return m.block(lines)
}

// block pads every line to a common width on the picker background.
func (m Model) block(lines []string) string {
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.surface(lipgloss.NewStyle()).Padding(0, 1).Render(content)
}

func isSameDay(d1, d2 time.Time) bool {
	return d1.Year() == d2.Year() && d1.Month() == d2.Month() && d1.Day() == d2.Day()
}
