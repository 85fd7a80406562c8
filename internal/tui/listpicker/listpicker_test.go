package listpicker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func fruit() Model {
	m := New()
	m.SetItems([]string{"apple", "banana", "cherry", "date", "elderberry", "fig", "grape"})
	return m
}

func TestNew_Empty(t *testing.T) {
	m := New()
	if len(m.Items()) != 0 {
		t.Errorf("expected no items, got %d", len(m.Items()))
	}
	if _, _, ok := m.Selected(); ok {
		t.Error("expected no selection on an empty list")
	}
	if !strings.Contains(m.View(), "No items") {
		t.Error("expected empty-list message in view")
	}
}

func TestUpdate_Navigation(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{nil, "apple"},
		{[]string{"j"}, "banana"},
		{[]string{"down", "down"}, "cherry"},
		{[]string{"k"}, "apple"},
		{[]string{"G"}, "grape"},
		{[]string{"G", "j"}, "grape"},
		{[]string{"G", "g"}, "apple"},
	}

	for _, tt := range tests {
		m := fruit()
		for _, k := range tt.keys {
			m, _ = m.Update(key(k))
		}
		_, got, ok := m.Selected()
		if !ok || got != tt.want {
			t.Errorf("keys %v: expected %q, got %q (ok=%v)", tt.keys, tt.want, got, ok)
		}
	}
}

func TestSearch_FiltersWithFuzzyMatch(t *testing.T) {
	m := fruit()
	m, _ = m.Update(key("/"))
	if !m.IsTyping() {
		t.Fatal("expected search mode after '/'")
	}

	for _, r := range "grp" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(key("enter"))

	if m.IsTyping() {
		t.Error("enter should leave search mode")
	}
	idx, got, ok := m.Selected()
	if !ok || got != "grape" || idx != 6 {
		t.Errorf("expected grape at 6, got %q at %d (ok=%v)", got, idx, ok)
	}
	if !strings.Contains(m.View(), "filter: grp") {
		t.Error("expected filter indicator in view")
	}
}

func TestSearch_EscClearsFilter(t *testing.T) {
	m := fruit()
	m, _ = m.Update(key("/"))
	m, _ = m.Update(key("z"))
	m, _ = m.Update(key("esc"))

	if m.IsTyping() {
		t.Error("esc should leave search mode")
	}
	if len(m.filtered) != len(m.items) {
		t.Errorf("expected filter cleared, got %d of %d", len(m.filtered), len(m.items))
	}
}

func TestSelect(t *testing.T) {
	m := fruit()
	if !m.Select(3) {
		t.Fatal("expected Select(3) to succeed")
	}
	if _, got, _ := m.Selected(); got != "date" {
		t.Errorf("expected date, got %q", got)
	}
	if m.Select(99) {
		t.Error("expected out of range Select to fail")
	}
}

func TestView_WindowFollowsSelection(t *testing.T) {
	m := fruit()
	m.SetVisibleRows(3)
	m, _ = m.Update(key("G"))

	view := m.View()
	if !strings.Contains(view, "grape") {
		t.Error("expected selected item inside the window")
	}
	if strings.Contains(view, "apple") {
		t.Error("expected first item scrolled out of the window")
	}
	if got := lipgloss.Height(view); got != 4 {
		t.Errorf("expected 3 rows plus footer, got %d lines", got)
	}
}

func TestView_HeightStableWhileFiltering(t *testing.T) {
	m := fruit()
	before := lipgloss.Height(m.View())
	beforeWidth := lipgloss.Width(m.View())

	m, _ = m.Update(key("/"))
	m, _ = m.Update(key("q"))

	if got := lipgloss.Height(m.View()); got != before {
		t.Errorf("expected height %d, got %d", before, got)
	}
	if got := lipgloss.Width(m.View()); got != beforeWidth {
		t.Errorf("expected width %d, got %d", beforeWidth, got)
	}
}
