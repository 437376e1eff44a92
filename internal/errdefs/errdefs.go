// This package contains errors encountered when locating devices and changing
// their state through the Windows SetupAPI and configuration manager APIs.
package errdefs

import (
	"errors"
	"syscall"

	cerrdefs "github.com/containerd/errdefs"
)

const (
	// ErrAccessDenied is returned by SetupAPI when the caller lacks the privilege
	// to change a device's configuration.
	ErrAccessDenied = syscall.Errno(0x5)

	// ErrNoMoreItems ends an enumeration of a device information set.
	ErrNoMoreItems = syscall.Errno(0x103)
)

// kindError is a failure kind. It unwraps to its containerd errdefs category,
// so callers can classify kinds with [cerrdefs.IsNotFound] and co.
type kindError struct {
	msg      string
	category error
}

func newKind(msg string, category error) error {
	return &kindError{msg: msg, category: category}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.category }

// Device state change failure kinds.
var (
	// ErrRegistryUnavailable is returned when the device set snapshot cannot be
	// created.
	ErrRegistryUnavailable = newKind("device registry unavailable", cerrdefs.ErrUnavailable)

	// ErrIdentifierUnavailable is returned when an entry's instance ID cannot be
	// read. Device scans skip such entries.
	ErrIdentifierUnavailable = newKind("device identifier unavailable", cerrdefs.ErrUnavailable)

	// ErrDeviceNotFound is returned when no entry in the device set has the
	// requested instance ID.
	ErrDeviceNotFound = newKind("device not found", cerrdefs.ErrNotFound)

	// ErrStageFailed is returned when the platform rejects the change request
	// parameters. The device was not modified.
	ErrStageFailed = newKind("failed to stage device state change", cerrdefs.ErrFailedPrecondition)

	// ErrCommitFailed is returned when the staged change could not be applied.
	// The device is left in whatever state the platform left it in.
	ErrCommitFailed = newKind("failed to commit device state change", cerrdefs.ErrAborted)
)

// Argument errors.
var (
	// ErrInvalidAction is returned for an action token other than "/enable" or
	// "/disable".
	ErrInvalidAction = newKind("invalid action", cerrdefs.ErrInvalidArgument)

	// ErrInvalidIdentifier is returned for an identifier that cannot be used as a
	// matching key.
	ErrInvalidIdentifier = newKind("invalid device identifier", cerrdefs.ErrInvalidArgument)

	// ErrNotElevated is returned when elevation is required and the process
	// token is not elevated.
	ErrNotElevated = newKind("process is not elevated", cerrdefs.ErrPermissionDenied)
)

// Kinds lists the failure kinds, in the order they can occur during a state
// change.
var Kinds = []error{
	ErrInvalidAction,
	ErrInvalidIdentifier,
	ErrNotElevated,
	ErrRegistryUnavailable,
	ErrIdentifierUnavailable,
	ErrDeviceNotFound,
	ErrStageFailed,
	ErrCommitFailed,
}

// IsAny returns true if errors.Is is true for any of the provided errors, errs.
func IsAny(err error, errs ...error) bool {
	for _, e := range errs {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
