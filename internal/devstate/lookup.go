package devstate

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/Microsoft/devtoggle/internal/errdefs"
	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/logfields"
	"github.com/Microsoft/devtoggle/internal/oc"
)

// Lookup scans set in index order and returns the first entry whose instance ID
// equals id. Comparison is exact and case-sensitive. Entries whose ID cannot be
// read are skipped.
//
// Entries after the first match are never inspected, so if two devices report
// the same ID the one enumerated first wins.
func Lookup(ctx context.Context, set DeviceSet, id string) (_ Entry, err error) {
	ctx, span := oc.StartSpan(ctx, "devstate::Lookup")
	defer span.End()
	defer func() { oc.SetSpanStatus(span, err) }()
	span.AddAttributes(trace.StringAttribute(logfields.DeviceID, id))

	skipped := 0
	for i := 0; ; i++ {
		entry, ok := set.Next(ctx, i)
		if !ok {
			span.AddAttributes(
				trace.Int64Attribute(logfields.Scanned, int64(i)),
				trace.Int64Attribute(logfields.Skipped, int64(skipped)))
			log.G(ctx).WithFields(logrus.Fields{
				logfields.DeviceID: id,
				logfields.Scanned:  i,
				logfields.Skipped:  skipped,
			}).Debug("device set exhausted")
			return Entry{}, newError("lookup", id, errdefs.ErrDeviceNotFound, nil)
		}

		got, err := set.IdentifierOf(ctx, entry)
		if err != nil {
			skipped++
			log.G(ctx).WithFields(logrus.Fields{
				logfields.Index:    i,
				logfields.Instance: entry.Instance,
			}).WithError(err).Debug("skipping device entry")
			continue
		}
		if got != id {
			continue
		}

		span.AddAttributes(trace.Int64Attribute(logfields.Index, int64(i)))
		log.G(ctx).WithFields(logrus.Fields{
			logfields.DeviceID: id,
			logfields.Index:    i,
			logfields.Instance: entry.Instance,
		}).Debug("found device")
		return entry, nil
	}
}
