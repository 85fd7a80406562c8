// Package modal implements a bottom-pinned picker overlay: a header row with
// a title and Cancel/Done buttons above either a date picker or a list picker.
//
// A picker is created for one presentation. The host presents it, forwards
// messages to it, and is asked to dismiss it when either button is tapped.
// Only Done notifies the caller, after the host has dismissed the picker.
package modal

import (
	"github.com/charmbracelet/lipgloss"
	"modalpicker/internal/layout"
	"modalpicker/internal/logs"
	"modalpicker/internal/tui/datepicker"
	"modalpicker/internal/tui/listpicker"
	"modalpicker/internal/tui/theme"
)

// Host is the screen that owns the presentation.
type Host interface {
	// Present attaches p as the current child presentation.
	Present(p *ModalPicker)
	// Dismiss removes the current child presentation.
	Dismiss(animated bool)
}

// DismissedFunc is called once after Done dismissed the picker. sender is the Done button.
type DismissedFunc func(sender *Button)

// ModalPicker is a header bar with Cancel/Done over a date or list picker.
//
// The exported fields are read when the view tree is built, so they must be
// set before Present.
type ModalPicker struct {
	HeaderBackgroundColor lipgloss.TerminalColor
	HeaderTextColor       lipgloss.TerminalColor
	HeaderText            string
	DoneButtonText        string
	CancelButtonText      string

	// OnDismissed is the single dismissal subscriber.
	OnDismissed DismissedFunc

	// Metrics maps layout points to terminal cells.
	Metrics layout.Metrics

	kind       Kind
	datePicker *datepicker.Model
	listPicker *listpicker.Model
	host       Host
	state      State
	closedBy   State

	headerLabel  *Label
	cancelButton *Button
	doneButton   *Button
	constraints  []layout.Constraint
	focus        focusTarget

	width  int
	height int
}

// New creates a picker of the given kind. No view is built until Present.
func New(kind Kind, headerText string, host Host) *ModalPicker {
	m := &ModalPicker{
		HeaderBackgroundColor: theme.White,
		HeaderTextColor:       theme.Black,
		HeaderText:            headerText,
		DoneButtonText:        "Done",
		CancelButtonText:      "Cancel",
		Metrics:               layout.DefaultMetrics(),
		host:                  host,
		focus:                 focusDone,
	}
	m.SetKind(kind)
	return m
}

// Kind returns the current picker kind.
func (m *ModalPicker) Kind() Kind {
	return m.kind
}

// SetKind replaces the content widget with a fresh one of the given kind.
// It always reallocates, even when k is the current kind. An unrecognised
// kind is recorded but leaves the widgets untouched.
func (m *ModalPicker) SetKind(k Kind) {
	switch k {
	case KindDate:
		dp := datepicker.New()
		m.datePicker = &dp
		m.listPicker = nil
	case KindCustom:
		lp := listpicker.New()
		m.datePicker = nil
		m.listPicker = &lp
	default:
	}

	m.kind = k

	if m.state == StatePresented {
		m.paintContent()
	}
}

// DatePicker returns the live date widget, or nil unless the kind is KindDate.
func (m *ModalPicker) DatePicker() *datepicker.Model {
	return m.datePicker
}

// ListPicker returns the live list widget, or nil unless the kind is KindCustom.
func (m *ModalPicker) ListPicker() *listpicker.Model {
	return m.listPicker
}

// Host returns the presenting screen.
func (m *ModalPicker) Host() Host {
	return m.host
}

// State returns where the picker is in its lifecycle.
func (m *ModalPicker) State() State {
	return m.state
}

// Confirmed reports whether the picker was closed with Done.
func (m *ModalPicker) Confirmed() bool {
	return m.closedBy == StateDoneTapped
}

// HeaderLabel, CancelButton and DoneButton expose the built header nodes.
// They are nil before Present.
func (m *ModalPicker) HeaderLabel() *Label   { return m.headerLabel }
func (m *ModalPicker) CancelButton() *Button { return m.cancelButton }
func (m *ModalPicker) DoneButton() *Button   { return m.doneButton }

// Present asks the host to show the picker and builds the view tree.
// Later calls do nothing.
func (m *ModalPicker) Present() {
	if m.state != StateUnattached {
		return
	}
	if m.host != nil {
		m.host.Present(m)
	}
	m.build()
	m.state = StatePresented
	logs.Logger.Printf("Presented %s picker %q", m.kind, m.HeaderText)
}

// TapCancel behaves like a tap on the Cancel button.
func (m *ModalPicker) TapCancel() {
	m.cancelButton.Tap()
}

// TapDone behaves like a tap on the Done button.
func (m *ModalPicker) TapDone() {
	m.doneButton.Tap()
}

func (m *ModalPicker) cancelTapped(sender *Button) {
	if m.state != StatePresented {
		return
	}
	m.state = StateCancelTapped
	m.closedBy = StateCancelTapped
	logs.Logger.Printf("Cancel tapped on %q", m.HeaderText)
	m.dismiss()
}

func (m *ModalPicker) doneTapped(sender *Button) {
	if m.state != StatePresented {
		return
	}
	m.state = StateDoneTapped
	m.closedBy = StateDoneTapped
	logs.Logger.Printf("Done tapped on %q", m.HeaderText)
	m.dismiss()
	if m.OnDismissed != nil {
		m.OnDismissed(sender)
	}
}

func (m *ModalPicker) dismiss() {
	if m.host != nil {
		m.host.Dismiss(true)
	}
	m.state = StateDismissed
}
