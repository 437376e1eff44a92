package devstate

import (
	"errors"
	"fmt"

	"github.com/Microsoft/devtoggle/internal/errdefs"
)

// DeviceError is a failure of a device operation. Kind is one of the failure
// kinds in errdefs; Err is the underlying cause, if any.
//
// [errors.Is] matches a DeviceError against both Kind and Err.
type DeviceError struct {
	Op   string
	ID   string
	Kind error
	Err  error
}

var _ error = &DeviceError{}

func (e *DeviceError) Error() string {
	s := e.Op
	if e.ID != "" {
		s += fmt.Sprintf(" %q", e.ID)
	}
	if s != "" {
		s += ": "
	}
	s += e.Kind.Error()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DeviceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op, id string, kind, err error) error {
	return &DeviceError{Op: op, ID: id, Kind: kind, Err: err}
}

// KindOf returns the errdefs failure kind that err matches, or nil.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	if derr := (&DeviceError{}); errors.As(err, &derr) {
		return derr.Kind
	}
	for _, k := range errdefs.Kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
