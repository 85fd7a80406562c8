package messages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// OpenPickerMsg asks the host to present a new picker
type OpenPickerMsg struct{}

// PickerClosedMsg is sent when the host dismissed the current picker
type PickerClosedMsg struct {
	Confirmed bool
	Animated  bool
}

// PickedMsg carries the value read off the picker after Done
type PickedMsg struct {
	Kind  string
	Value string
	Index int       // list position, -1 for dates or an empty list
	Date  time.Time // zero unless Kind is "date"
}

func OpenPicker() tea.Cmd {
	return func() tea.Msg {
		return OpenPickerMsg{}
	}
}
