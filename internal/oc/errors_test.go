package oc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opencensus.io/trace"

	"github.com/Microsoft/devtoggle/internal/errdefs"
)

func TestToStatusCode(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want uint32
	}{
		{context.Canceled, trace.StatusCodeCancelled},
		{errdefs.ErrInvalidAction, trace.StatusCodeInvalidArgument},
		{errdefs.ErrInvalidIdentifier, trace.StatusCodeInvalidArgument},
		{errdefs.ErrDeviceNotFound, trace.StatusCodeNotFound},
		{errdefs.ErrNotElevated, trace.StatusCodePermissionDenied},
		{errdefs.ErrAccessDenied, trace.StatusCodePermissionDenied},
		{errdefs.ErrRegistryUnavailable, trace.StatusCodeUnavailable},
		{errdefs.ErrIdentifierUnavailable, trace.StatusCodeUnavailable},
		{errdefs.ErrStageFailed, trace.StatusCodeFailedPrecondition},
		{errdefs.ErrCommitFailed, trace.StatusCodeAborted},
		{errors.New("boom"), trace.StatusCodeUnknown},
	} {
		wrapped := fmt.Errorf("set state: %w", tc.err)
		if got := toStatusCode(wrapped); got != tc.want {
			t.Errorf("toStatusCode(%v): expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestSetSpanStatus(t *testing.T) {
	_, span := StartSpan(context.Background(), t.Name(), trace.WithSampler(trace.AlwaysSample()))
	SetSpanStatus(span, nil)
	SetSpanStatus(span, errdefs.ErrDeviceNotFound)
	span.End()
}
