package modal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind name is not recognised.
var ErrUnknownKind = errors.New("unknown picker kind")

// Kind selects the content widget shown under the header.
type Kind int

const (
	KindDate Kind = iota
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind reads a kind name as written in config files and flags.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return KindDate, nil
	case "custom", "list":
		return KindCustom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// State tracks a picker through its single presentation.
type State int

const (
	StateUnattached State = iota
	StatePresented
	StateCancelTapped
	StateDoneTapped
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateUnattached:
		return "unattached"
	case StatePresented:
		return "presented"
	case StateCancelTapped:
		return "cancel-tapped"
	case StateDoneTapped:
		return "done-tapped"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
