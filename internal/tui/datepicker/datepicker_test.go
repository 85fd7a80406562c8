package datepicker

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func fixedPicker(t *testing.T) Model {
	t.Helper()
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.Local)
	m := New()
	m.now = func() time.Time { return now }
	m.SetDate(now)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func ymd(t time.Time) string {
	return t.Format("2006-01-02")
}

func TestNew_TruncatesToDay(t *testing.T) {
	m := fixedPicker(t)
	d := m.Date()
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("expected midnight, got %v", d)
	}
	if ymd(d) != "2026-03-15" {
		t.Errorf("expected 2026-03-15, got %s", ymd(d))
	}
}

func TestUpdate_CalendarNavigation(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"l"}, "2026-03-16"},
		{[]string{"h"}, "2026-03-14"},
		{[]string{"left"}, "2026-03-14"},
		{[]string{"j"}, "2026-03-22"},
		{[]string{"k"}, "2026-03-08"},
		{[]string{"+"}, "2026-04-15"},
		{[]string{"-"}, "2026-02-15"},
		{[]string{"l", "l", "t"}, "2026-03-15"},
		{[]string{"j", "j", "j"}, "2026-04-05"},
	}

	for _, tt := range tests {
		m := fixedPicker(t)
		for _, k := range tt.keys {
			m, _ = m.Update(key(k))
		}
		if got := ymd(m.Date()); got != tt.want {
			t.Errorf("keys %v: expected %s, got %s", tt.keys, tt.want, got)
		}
	}
}

func TestAddMonths_ClampsDay(t *testing.T) {
	start := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.Local)
	if got := ymd(addMonths(start, 1)); got != "2026-02-28" {
		t.Errorf("expected 2026-02-28, got %s", got)
	}
	if got := ymd(addMonths(start, -2)); got != "2025-11-30" {
		t.Errorf("expected 2025-11-30, got %s", got)
	}
}

func TestTextInput_SetsDate(t *testing.T) {
	m := fixedPicker(t)
	m, _ = m.Update(key("i"))
	if !m.IsTyping() {
		t.Fatal("expected text input mode after 'i'")
	}

	m.textInput.SetValue("")
	m = typeText(m, "+5")
	m, _ = m.Update(key("enter"))

	if m.IsTyping() {
		t.Error("expected calendar mode after a valid entry")
	}
	if got := ymd(m.Date()); got != "2026-03-20" {
		t.Errorf("expected 2026-03-20, got %s", got)
	}
}

func TestTextInput_InvalidKeepsTyping(t *testing.T) {
	m := fixedPicker(t)
	m, _ = m.Update(key("i"))
	m.textInput.SetValue("not a date")
	m, _ = m.Update(key("enter"))

	if !m.IsTyping() {
		t.Error("expected to stay in text input mode")
	}
	if !errors.Is(m.err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", m.err)
	}
	if got := ymd(m.Date()); got != "2026-03-15" {
		t.Errorf("date should be unchanged, got %s", got)
	}

	m, _ = m.Update(key("esc"))
	if m.IsTyping() {
		t.Error("esc should return to the calendar")
	}
}

func TestParseTextInput(t *testing.T) {
	m := fixedPicker(t)
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2026-12-01", "2026-12-01", true},
		{"04-02", "2026-04-02", true},
		{"+1", "2026-03-16", true},
		{"-3", "2026-03-12", true},
		{"today", "2026-03-15", true},
		{"Tomorrow", "2026-03-16", true},
		{"yesterday", "2026-03-14", true},
		{"+x", "", false},
		{"someday", "", false},
	}

	for _, tt := range tests {
		got, err := m.parseTextInput(tt.input)
		if tt.ok != (err == nil) {
			t.Errorf("%q: expected ok=%v, got err=%v", tt.input, tt.ok, err)
			continue
		}
		if tt.ok && ymd(got) != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.input, tt.want, ymd(got))
		}
	}
}

func TestView_StableHeight(t *testing.T) {
	m := fixedPicker(t)
	calendar := lipgloss.Height(m.View())

	m, _ = m.Update(key("i"))
	typing := lipgloss.Height(m.View())

	if calendar != typing {
		t.Errorf("expected the same height in both modes, got %d and %d", calendar, typing)
	}

	m, _ = m.Update(key("esc"))
	m, _ = m.Update(key("+"))
	if got := lipgloss.Height(m.View()); got != calendar {
		t.Errorf("expected height %d after changing month, got %d", calendar, got)
	}
}

func TestView_ShowsMonth(t *testing.T) {
	m := fixedPicker(t)
	if !strings.Contains(m.View(), "March 2026") {
		t.Errorf("expected month header in view")
	}
}
