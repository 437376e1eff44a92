package oc

import (
	"context"

	cerrdefs "github.com/containerd/errdefs"
	"go.opencensus.io/trace"

	"github.com/Microsoft/devtoggle/internal/errdefs"
)

func toStatusCode(err error) uint32 {
	switch {
	case checkErrors(err, context.Canceled):
		return trace.StatusCodeCancelled
	case checkErrors(err, context.DeadlineExceeded):
		return trace.StatusCodeDeadlineExceeded
	case cerrdefs.IsInvalidArgument(err):
		return trace.StatusCodeInvalidArgument
	case cerrdefs.IsNotFound(err):
		return trace.StatusCodeNotFound
	case cerrdefs.IsPermissionDenied(err), checkErrors(err, errdefs.ErrAccessDenied):
		return trace.StatusCodePermissionDenied
	case cerrdefs.IsUnavailable(err):
		return trace.StatusCodeUnavailable
	case cerrdefs.IsFailedPrecondition(err):
		return trace.StatusCodeFailedPrecondition
	case cerrdefs.IsAborted(err):
		return trace.StatusCodeAborted
	default:
		return trace.StatusCodeUnknown
	}
}

func checkErrors(err error, errs ...error) bool {
	return errdefs.IsAny(err, errs...)
}
