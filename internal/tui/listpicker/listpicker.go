package listpicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
	"modalpicker/internal/tui/shared"
)

const (
	defaultVisibleRows = 5
	minWidth           = 24
	maxWidth           = 60
)

// Model is a single-selection list shown through a window of rows around the
// selection. A new model has no items.
type Model struct {
	items       []string
	filtered    []int // indices into items
	selected    int   // index into filtered
	searching   bool
	query       string
	textInput   textinput.Model
	visibleRows int
	background  lipgloss.TerminalColor
}

// New returns an empty list.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.CharLimit = 50
	ti.Width = minWidth

	return Model{
		textInput:   ti,
		visibleRows: defaultVisibleRows,
		background:  lipgloss.NoColor{},
	}
}

// SetItems replaces the options and resets filter and selection.
func (m *Model) SetItems(items []string) {
	m.items = append([]string(nil), items...)
	m.query = ""
	m.searching = false
	m.textInput.SetValue("")
	m.textInput.Blur()
	m.selected = 0
	m.applyFilter()
}

// Items returns the options in their original order.
func (m Model) Items() []string {
	return m.items
}

// Selected returns the index into Items and the value under the selection.
// ok is false when nothing is selectable.
func (m Model) Selected() (int, string, bool) {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return -1, "", false
	}
	i := m.filtered[m.selected]
	return i, m.items[i], true
}

// Select moves the selection to item i, clearing any filter that hides it.
func (m *Model) Select(i int) bool {
	if i < 0 || i >= len(m.items) {
		return false
	}
	for pos, idx := range m.filtered {
		if idx == i {
			m.selected = pos
			return true
		}
	}
	m.query = ""
	m.textInput.SetValue("")
	m.applyFilter()
	m.selected = i
	return true
}

// SetVisibleRows sets how many options are shown at once.
func (m *Model) SetVisibleRows(n int) {
	if n < 1 {
		n = 1
	}
	m.visibleRows = n
}

// SetBackground sets the surface color the list is painted on.
func (m *Model) SetBackground(c lipgloss.TerminalColor) {
	m.background = c
}

// Background returns the surface color.
func (m Model) Background() lipgloss.TerminalColor {
	return m.background
}

// IsTyping returns true while the search box has focus
func (m Model) IsTyping() bool {
	return m.searching
}

func (m *Model) applyFilter() {
	if m.query == "" {
		m.filtered = make([]int, len(m.items))
		for i := range m.items {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(m.query, m.items)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles list keys, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searching = true
		m.textInput.SetValue(m.query)
		m.textInput.CursorEnd()
		m.textInput.Focus()
		return m, textinput.Blink

	case "j", "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "g", "home":
		m.selected = 0

	case "G", "end":
		m.selected = max(0, len(m.filtered)-1)

	case "pgdown":
		m.selected = min(max(0, len(m.filtered)-1), m.selected+m.visibleRows)

	case "pgup":
		m.selected = max(0, m.selected-m.visibleRows)

	case "backspace":
		if m.query != "" {
			m.query = ""
			m.applyFilter()
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.query = ""
		m.textInput.SetValue("")
		m.textInput.Blur()
		m.applyFilter()
		return m, nil

	case "enter":
		m.searching = false
		m.query = m.textInput.Value()
		m.textInput.Blur()
		m.applyFilter()
		return m, nil

	case "up", "down":
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.query = m.textInput.Value()
	m.selected = 0
	m.applyFilter()
	return m, cmd
}

// width is derived from every item, not just the visible ones, so the list
// does not change size while filtering.
func (m Model) width() int {
	w := minWidth
	for _, item := range m.items {
		w = max(w, lipgloss.Width(item)+4)
	}
	return min(w, maxWidth)
}

func (m Model) View() string {
	width := m.width()
	row := func(style lipgloss.Style, s string) string {
		return style.Background(m.background).Width(width).Render(ansi.Truncate(s, width, "…"))
	}
	blank := row(lipgloss.NewStyle(), "")

	var lines []string

	if len(m.filtered) == 0 {
		msg := "  No items"
		if len(m.items) > 0 {
			msg = "  No matches"
		}
		lines = append(lines, row(shared.ListMutedStyle, msg))
	} else {
		// Keep the selection inside the window, centered when possible.
		start := m.selected - m.visibleRows/2
		start = min(start, len(m.filtered)-m.visibleRows)
		start = max(start, 0)
		end := min(start+m.visibleRows, len(m.filtered))

		for i := start; i < end; i++ {
			item := m.items[m.filtered[i]]
			if i == m.selected {
				lines = append(lines, row(shared.ListSelectedStyle, "► "+item))
			} else {
				lines = append(lines, row(shared.ListItemStyle, "  "+item))
			}
		}
	}
	for len(lines) < m.visibleRows {
		lines = append(lines, blank)
	}

	switch {
	case m.searching:
		lines = append(lines, row(lipgloss.NewStyle(), m.textInput.View()))
	case m.query != "":
		lines = append(lines, row(shared.ListMutedStyle, fmt.Sprintf("filter: %s (%d/%d)", m.query, len(m.filtered), len(m.items))))
	default:
		lines = append(lines, row(shared.ListMutedStyle, "j/k move · / search"))
	}

	return strings.Join(lines, "\n")
}
