package devstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/Microsoft/devtoggle/internal/errdefs"
	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/logfields"
	"github.com/Microsoft/devtoggle/internal/oc"
)

// SetState finds the device with instance ID id in a fresh snapshot from reg
// and changes its state to s.
//
// The snapshot is closed exactly once before SetState returns, whether or not
// the device was found or the change succeeded. Returned errors are
// [*DeviceError] values whose Kind is one of the errdefs failure kinds.
func SetState(ctx context.Context, reg Registry, id string, s State) (err error) {
	ctx, span := oc.StartSpan(ctx, "devstate::SetState")
	defer span.End()
	defer func() { oc.SetSpanStatus(span, err) }()
	span.AddAttributes(
		trace.StringAttribute(logfields.DeviceID, id),
		trace.StringAttribute(logfields.State, s.String()))

	if !s.Valid() {
		return newError("set state", id, errdefs.ErrInvalidAction, fmt.Errorf("unknown state %v", s))
	}
	if err := ValidateIdentifier(id); err != nil {
		return err
	}

	start := time.Now()
	set, err := reg.Open(ctx)
	if err != nil {
		return newError("open device set", id, errdefs.ErrRegistryUnavailable, err)
	}
	defer func() {
		if cerr := set.Close(); cerr != nil {
			log.G(ctx).WithError(cerr).Warning("failed to release device set")
		}
	}()

	entry, err := Lookup(ctx, set, id)
	if err != nil {
		return err
	}

	phase, err := Apply(ctx, set, entry, s)
	if err != nil {
		if derr := (&DeviceError{}); errors.As(err, &derr) {
			derr.ID = id
		}
		return err
	}

	log.G(ctx).WithFields(logrus.Fields{
		logfields.DeviceID: id,
		logfields.State:    s,
		logfields.Phase:    phase,
		logfields.Duration: time.Since(start),
	}).Info("device state changed")
	return nil
}
