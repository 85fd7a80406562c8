package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"modalpicker/internal/layout"
	"modalpicker/internal/logs"
	"modalpicker/internal/tui/shared"
)

func (m *ModalPicker) Init() tea.Cmd {
	return nil
}

// SetSize records the host area the picker is laid out in.
func (m *ModalPicker) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height

	if m.state != StatePresented {
		return
	}
	res, err := m.Layout(width, height)
	if err != nil {
		logs.Logger.Printf("Layout failed at %dx%d: %v", width, height, err)
		return
	}
	for _, c := range res.Conflicts {
		logs.Logger.Printf("Unsatisfied constraint at %dx%d: %s", width, height, c)
	}
}

// Update handles input while the picker is presented.
func (m *ModalPicker) Update(msg tea.Msg) tea.Cmd {
	if m.state != StatePresented {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *ModalPicker) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.contentTyping() {
		return m.updateContent(msg)
	}

	switch msg.String() {
	case "esc":
		m.TapCancel()
		return nil

	case "enter":
		switch m.focus {
		case focusCancel:
			m.TapCancel()
			return nil
		case focusDone:
			m.TapDone()
			return nil
		}

	case "tab":
		m.setFocus(m.focus.next())
		return nil

	case "shift+tab":
		m.setFocus(m.focus.prev())
		return nil
	}

	return m.updateContent(msg)
}

func (m *ModalPicker) contentTyping() bool {
	switch {
	case m.datePicker != nil:
		return m.datePicker.IsTyping()
	case m.listPicker != nil:
		return m.listPicker.IsTyping()
	}
	return false
}

func (m *ModalPicker) updateContent(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.datePicker != nil:
		*m.datePicker, cmd = m.datePicker.Update(msg)
	case m.listPicker != nil:
		*m.listPicker, cmd = m.listPicker.Update(msg)
	}
	return cmd
}

func (m *ModalPicker) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}
	res, err := m.Layout(m.width, m.height)
	if err != nil {
		return
	}
	cells := res.Cells(m.Metrics)
	switch {
	case cells[nodeCancel].Contains(msg.X, msg.Y):
		m.TapCancel()
	case cells[nodeDone].Contains(msg.X, msg.Y):
		m.TapDone()
	}
}

// View renders the container rows: the header row on its shared baseline,
// then the content widget. The output is as wide as the host and as tall as
// the container.
func (m *ModalPicker) View() string {
	if m.state != StatePresented {
		return ""
	}

	res, err := m.Layout(m.width, m.height)
	if err != nil {
		logs.Logger.Printf("Falling back to stacked view: %v", err)
		return m.stackedView()
	}

	cells := res.Cells(m.Metrics)
	container := cells[nodeContainer]
	if container.Width <= 0 || container.Height <= 0 {
		return ""
	}

	bg := paint(m.HeaderBackgroundColor, nil)
	fill := lipgloss.NewStyle().Background(bg)
	gap := func(n int) string {
		if n <= 0 {
			return ""
		}
		return fill.Render(strings.Repeat(" ", n))
	}

	headerRow := m.Metrics.Row(res.Baselines[nodeHeader])
	content := cells[nodeContent]
	contentLines := strings.Split(m.contentView(), "\n")

	rows := make([]string, 0, container.Height)
	for y := container.Y; y < container.Bottom(); y++ {
		var row string
		switch {
		case y == headerRow:
			row = m.headerRow(cells, bg, gap)
		case y >= content.Y && y-content.Y < len(contentLines):
			line := contentLines[y-content.Y]
			left := content.X - container.X
			row = gap(left) + line + gap(container.Width-left-lipgloss.Width(line))
		default:
			row = gap(container.Width)
		}
		rows = append(rows, fitWidth(row, container.Width, gap))
	}

	return strings.Join(rows, "\n")
}

func (m *ModalPicker) headerRow(cells map[string]layout.Cell, bg lipgloss.TerminalColor, gap func(int) string) string {
	container := cells[nodeContainer]
	cancel := cells[nodeCancel]
	header := cells[nodeHeader]
	done := cells[nodeDone]

	var b strings.Builder
	b.WriteString(gap(cancel.X - container.X))
	b.WriteString(m.cancelButton.render(cancel.Width, bg))
	b.WriteString(gap(header.X - cancel.Right()))
	b.WriteString(m.headerLabel.render(header.Width, bg))
	b.WriteString(gap(done.X - max(header.Right(), cancel.Right())))
	b.WriteString(m.doneButton.render(done.Width, bg))
	b.WriteString(gap(container.Right() - done.Right()))
	return b.String()
}

// fitWidth cuts or pads a rendered row to exactly width cells.
func fitWidth(row string, width int, gap func(int) string) string {
	w := lipgloss.Width(row)
	if w > width {
		return ansi.Truncate(row, width, "")
	}
	return row + gap(width-w)
}

// stackedView is used when the constraints cannot be solved for the host
// size: header row above content, without the constraint metrics.
func (m *ModalPicker) stackedView() string {
	bg := paint(m.HeaderBackgroundColor, nil)
	cancel := m.cancelButton.render(lipgloss.Width(m.cancelButton.Title)+2, bg)
	done := m.doneButton.render(lipgloss.Width(m.doneButton.Title)+2, bg)
	labelWidth := max(0, m.width-lipgloss.Width(cancel)-lipgloss.Width(done))
	header := lipgloss.JoinHorizontal(lipgloss.Top, cancel, m.headerLabel.render(labelWidth, bg), done)

	body := lipgloss.NewStyle().
		Width(max(m.width, lipgloss.Width(header))).
		Align(lipgloss.Center).
		Background(bg).
		Render(m.contentView())
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// Overlay draws the picker over the bottom rows of the host's screen. The
// rows above the container keep the host's content.
func (m *ModalPicker) Overlay(base string) string {
	if m.state != StatePresented {
		return base
	}
	return shared.PinToBottom(base, m.View(), m.height)
}
