package tui

import "modalpicker/internal/tui/messages"

// Re-export types from messages package for convenience
type OpenPickerMsg = messages.OpenPickerMsg
type PickerClosedMsg = messages.PickerClosedMsg
type PickedMsg = messages.PickedMsg
