package devstate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Microsoft/devtoggle/internal/errdefs"
)

// State is the desired enabled/disabled state of a device.
type State uint8

const (
	// the zero State is invalid
	Enable State = iota + 1
	Disable
)

const (
	ActionEnable  = "/enable"
	ActionDisable = "/disable"
)

func (s State) String() string {
	switch s {
	case Enable:
		return "enable"
	case Disable:
		return "disable"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Valid returns true for [Enable] and [Disable].
func (s State) Valid() bool {
	return s == Enable || s == Disable
}

// ParseAction converts a command line action token into a State. Matching is
// exact and case-sensitive.
func ParseAction(token string) (State, error) {
	switch token {
	case ActionEnable:
		return Enable, nil
	case ActionDisable:
		return Disable, nil
	}
	return 0, newError("parse action", "", errdefs.ErrInvalidAction, fmt.Errorf("%q is not %q or %q", token, ActionEnable, ActionDisable))
}

// ValidateIdentifier checks that id can be used as a matching key: it must be
// non-empty valid UTF-8 with no NUL characters, so that it converts to a
// NUL-terminated UTF-16 string without truncation.
func ValidateIdentifier(id string) error {
	switch {
	case id == "":
		return newError("validate", id, errdefs.ErrInvalidIdentifier, fmt.Errorf("identifier is empty"))
	case strings.IndexByte(id, 0) != -1:
		return newError("validate", id, errdefs.ErrInvalidIdentifier, fmt.Errorf("identifier contains a NUL character"))
	case !utf8.ValidString(id):
		return newError("validate", id, errdefs.ErrInvalidIdentifier, fmt.Errorf("identifier is not valid UTF-8"))
	}
	return nil
}
