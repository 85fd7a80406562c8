package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"modalpicker/internal/logs"
	"modalpicker/internal/tui/messages"
	"modalpicker/internal/tui/modal"
)

// Presenter owns the child presentation of the app screen. It implements
// modal.Host: pickers attach themselves with Present and ask to be torn down
// with Dismiss. Both happen inside an Update call, so the resulting messages
// are queued and handed back to the program by Flush.
type Presenter struct {
	current *modal.ModalPicker
	pending []tea.Msg
	width   int
	height  int
}

// NewPresenter creates a presenter with nothing presented.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present attaches p as the current presentation, replacing any other.
func (s *Presenter) Present(p *modal.ModalPicker) {
	if s.current != nil && s.current != p {
		logs.Logger.Printf("Replacing presented %s picker", s.current.Kind())
	}
	s.current = p
	p.SetSize(s.width, s.height)
}

// Dismiss removes the current presentation.
func (s *Presenter) Dismiss(animated bool) {
	if s.current == nil {
		return
	}
	s.Emit(messages.PickerClosedMsg{
		Confirmed: s.current.Confirmed(),
		Animated:  animated,
	})
	s.current = nil
}

// Current returns the presented picker, nil if none.
func (s *Presenter) Current() *modal.ModalPicker {
	return s.current
}

// Active returns true while a picker is presented
func (s *Presenter) Active() bool {
	return s.current != nil
}

// SetSize records the screen size and passes it to the presented picker.
func (s *Presenter) SetSize(width, height int) {
	s.width = width
	s.height = height
	if s.current != nil {
		s.current.SetSize(width, height)
	}
}

// Emit queues a message for the next Flush.
func (s *Presenter) Emit(msg tea.Msg) {
	s.pending = append(s.pending, msg)
}

// Flush returns a command delivering the queued messages in order.
func (s *Presenter) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(s.pending))
	for i, msg := range s.pending {
		cmds[i] = func() tea.Msg { return msg }
	}
	s.pending = nil
	return tea.Sequence(cmds...)
}

// Update forwards the message to the presented picker.
func (s *Presenter) Update(msg tea.Msg) tea.Cmd {
	if s.current == nil {
		return s.Flush()
	}
	cmd := s.current.Update(msg)
	return tea.Batch(cmd, s.Flush())
}

// View draws the presented picker over base.
func (s *Presenter) View(base string) string {
	if s.current == nil {
		return base
	}
	return s.current.Overlay(base)
}
