package modal

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"modalpicker/internal/layout"
	"modalpicker/internal/tui/theme"
)

// ErrNotPresented is returned by Layout before the view tree exists.
var ErrNotPresented = errors.New("picker has not been presented")

// Node names in the view tree.
const (
	nodeView      = "view"
	nodeContainer = "container"
	nodeHeader    = "header"
	nodeCancel    = "cancel"
	nodeDone      = "done"
	nodeContent   = "content"
)

// Header metrics, in points.
const (
	buttonWidth   = 71
	buttonHeight  = 30
	headerTop     = 7
	headerSpacing = 10
	contentGap    = 5
)

type focusTarget int

const (
	focusContent focusTarget = iota
	focusCancel
	focusDone
)

func (f focusTarget) next() focusTarget { return (f + 1) % 3 }
func (f focusTarget) prev() focusTarget { return (f + 2) % 3 }

// build creates the header nodes, paints the content widget and records the
// constraint list. It runs once, from Present.
func (m *ModalPicker) build() {
	m.headerLabel = &Label{
		Text:       m.HeaderText,
		TextColor:  m.HeaderTextColor,
		Background: m.HeaderBackgroundColor,
		Align:      lipgloss.Center,
	}

	m.cancelButton = &Button{
		Title:      m.CancelButtonText,
		TitleColor: m.HeaderTextColor,
		Background: theme.Clear,
		onTap:      m.cancelTapped,
	}

	m.doneButton = &Button{
		Title:      m.DoneButtonText,
		TitleColor: m.HeaderTextColor,
		Background: theme.Clear,
		onTap:      m.doneTapped,
	}

	m.setFocus(m.focus)
	m.paintContent()
	m.constraints = buildConstraints()
}

// paintContent forces the live content widget onto a white surface.
func (m *ModalPicker) paintContent() {
	switch {
	case m.datePicker != nil:
		m.datePicker.SetBackground(theme.White)
	case m.listPicker != nil:
		m.listPicker.SetBackground(theme.White)
	}
}

func (m *ModalPicker) setFocus(f focusTarget) {
	m.focus = f
	if m.cancelButton != nil {
		m.cancelButton.focused = f == focusCancel
	}
	if m.doneButton != nil {
		m.doneButton.focused = f == focusDone
	}
}

func buildConstraints() []layout.Constraint {
	return []layout.Constraint{
		layout.Fixed(nodeCancel, layout.Width, buttonWidth),
		layout.Fixed(nodeCancel, layout.Height, buttonHeight),
		layout.Fixed(nodeDone, layout.Width, buttonWidth),
		layout.Fixed(nodeDone, layout.Height, buttonHeight),

		// Header row, left to right.
		layout.Pin(nodeCancel, layout.Top, nodeContainer, layout.Top, headerTop),
		layout.Pin(nodeCancel, layout.Leading, nodeContainer, layout.Leading, headerSpacing),
		layout.Pin(nodeHeader, layout.Baseline, nodeCancel, layout.Baseline, 0),
		layout.Pin(nodeHeader, layout.Leading, nodeCancel, layout.Trailing, headerSpacing),
		layout.Pin(nodeDone, layout.Baseline, nodeHeader, layout.Baseline, 0),
		layout.Pin(nodeDone, layout.Leading, nodeHeader, layout.Trailing, headerSpacing),
		layout.Pin(nodeContainer, layout.Trailing, nodeDone, layout.Trailing, headerSpacing),

		layout.Pin(nodeContent, layout.CenterX, nodeContainer, layout.CenterX, 0),
		layout.Pin(nodeContent, layout.Bottom, nodeContainer, layout.Bottom, 0),
		layout.Pin(nodeContent, layout.Top, nodeCancel, layout.Bottom, contentGap),
		layout.AtLeast(nodeContainer, layout.Width, nodeContent, layout.Width, 0),

		layout.Pin(nodeContainer, layout.Leading, nodeView, layout.Leading, 0),
		layout.Pin(nodeContainer, layout.Trailing, nodeView, layout.Trailing, 0),
		layout.Pin(nodeContainer, layout.Bottom, nodeView, layout.Bottom, 0),
	}
}

// Constraints returns the constraint list built at presentation, nil before.
func (m *ModalPicker) Constraints() []layout.Constraint {
	return m.constraints
}

func (m *ModalPicker) contentView() string {
	switch {
	case m.datePicker != nil:
		return m.datePicker.View()
	case m.listPicker != nil:
		return m.listPicker.View()
	}
	return ""
}

// tree describes the current view tree inside a host of width x height cells.
// The container comes first so that, once the header chain stalls, the
// intrinsic sizes of label and buttons settle before the content's.
func (m *ModalPicker) tree(width, height int) *layout.Tree {
	metrics := m.Metrics
	if metrics.PointsPerColumn <= 0 || metrics.PointsPerRow <= 0 {
		metrics = layout.DefaultMetrics()
	}
	ppr := metrics.PointsPerRow

	bounds := metrics.Points(width, height)
	t := layout.NewTree(nodeView, layout.Rect{Width: bounds.Width, Height: bounds.Height})

	content := m.contentView()
	t.Add(
		layout.Node{Name: nodeContainer, Intrinsic: layout.NoIntrinsic()},
		layout.Node{
			Name:           nodeHeader,
			Intrinsic:      metrics.Points(lipgloss.Width(m.headerLabel.Text), 1),
			BaselineOffset: ppr,
		},
		layout.Node{
			Name:           nodeCancel,
			Intrinsic:      metrics.Points(lipgloss.Width(m.cancelButton.Title), 1),
			BaselineOffset: (buttonHeight-ppr)/2 + ppr,
		},
		layout.Node{
			Name:           nodeDone,
			Intrinsic:      metrics.Points(lipgloss.Width(m.doneButton.Title), 1),
			BaselineOffset: (buttonHeight-ppr)/2 + ppr,
		},
		layout.Node{
			Name:      nodeContent,
			Intrinsic: metrics.Points(lipgloss.Width(content), lipgloss.Height(content)),
		},
	)
	return t
}

// Layout solves the view tree for a host of width x height terminal cells.
// Frames are in points; use Result.Cells with the picker's Metrics to snap them.
func (m *ModalPicker) Layout(width, height int) (layout.Result, error) {
	if m.constraints == nil {
		return layout.Result{}, ErrNotPresented
	}
	return layout.Solve(m.tree(width, height), m.constraints)
}
