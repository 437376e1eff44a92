package devstate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/Microsoft/devtoggle/internal/errdefs"
	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/logfields"
	"github.com/Microsoft/devtoggle/internal/oc"
)

// Phase is how far a state change got.
type Phase uint8

const (
	// PhasePending means nothing was submitted to the platform.
	PhasePending Phase = iota
	// PhaseStaged means the change request was accepted but not applied.
	PhaseStaged
	// PhaseCommitted means the change was applied.
	PhaseCommitted
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseStaged:
		return "staged"
	case PhaseCommitted:
		return "committed"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Apply changes the state of entry to s. The change is submitted in two steps:
// the request is staged as the entry's class install parameters, then
// committed. A commit is only attempted after a successful stage. Neither step
// is retried and a failed commit is not rolled back.
//
// The returned Phase is the last step that succeeded.
func Apply(ctx context.Context, set DeviceSet, entry Entry, s State) (_ Phase, err error) {
	ctx, span := oc.StartSpan(ctx, "devstate::Apply")
	defer span.End()
	defer func() { oc.SetSpanStatus(span, err) }()
	span.AddAttributes(
		trace.StringAttribute(logfields.State, s.String()),
		trace.Int64Attribute(logfields.Index, int64(entry.Index)))

	if !s.Valid() {
		return PhasePending, newError("apply", "", errdefs.ErrInvalidAction, fmt.Errorf("unknown state %v", s))
	}

	req := NewChangeRequest(s)
	span.AddAttributes(trace.StringAttribute(logfields.Request, log.Format(ctx, req)))
	entryLog := log.G(ctx).WithFields(logrus.Fields{
		logfields.Index:    entry.Index,
		logfields.Instance: entry.Instance,
		logfields.State:    s,
	})

	if err := set.Stage(ctx, entry, req); err != nil {
		entryLog.WithField(logfields.Request, req).WithError(err).Debug("stage rejected")
		return PhasePending, newError("stage", "", errdefs.ErrStageFailed, err)
	}
	entryLog.Trace("change request staged")

	if err := set.Commit(ctx, entry); err != nil {
		entryLog.WithError(err).Debug("commit failed")
		return PhaseStaged, newError("commit", "", errdefs.ErrCommitFailed, err)
	}
	entryLog.Debug("device state changed")
	return PhaseCommitted, nil
}
