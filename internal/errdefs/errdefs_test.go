package errdefs

import (
	"errors"
	"fmt"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
)

func TestKindsAreDistinct(t *testing.T) {
	for i, a := range Kinds {
		for j, b := range Kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

func TestKindCategories(t *testing.T) {
	for _, tc := range []struct {
		kind error
		is   func(error) bool
	}{
		{ErrInvalidAction, cerrdefs.IsInvalidArgument},
		{ErrInvalidIdentifier, cerrdefs.IsInvalidArgument},
		{ErrNotElevated, cerrdefs.IsPermissionDenied},
		{ErrRegistryUnavailable, cerrdefs.IsUnavailable},
		{ErrIdentifierUnavailable, cerrdefs.IsUnavailable},
		{ErrDeviceNotFound, cerrdefs.IsNotFound},
		{ErrStageFailed, cerrdefs.IsFailedPrecondition},
		{ErrCommitFailed, cerrdefs.IsAborted},
	} {
		if !tc.is(fmt.Errorf("wrapped: %w", tc.kind)) {
			t.Errorf("%v has the wrong category", tc.kind)
		}
	}
}

func TestIsAny(t *testing.T) {
	err := fmt.Errorf("lookup: %w", ErrDeviceNotFound)
	if !IsAny(err, ErrStageFailed, ErrDeviceNotFound) {
		t.Fatalf("expected %v to match", err)
	}
	if IsAny(err, ErrStageFailed, ErrCommitFailed) {
		t.Fatalf("expected %v not to match", err)
	}
	if IsAny(err) {
		t.Fatal("expected no match with no targets")
	}
}
