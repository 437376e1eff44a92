package log

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/Microsoft/devtoggle/internal/logfields"
)

type request struct {
	Operation uint32
	Scope     uint32
}

func TestHookEncode(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 5, time.UTC)
	e := L.WithFields(logrus.Fields{
		logfields.Request:  &request{Operation: 0x12, Scope: 1},
		logfields.Duration: 1500 * time.Millisecond,
		logfields.EndTime:  ts,
		logfields.Index:    3,
		logfields.Path:     nil,
	})

	if err := NewHook().Fire(e); err != nil {
		t.Fatal(err)
	}

	for k, want := range map[string]interface{}{
		logfields.Request:  `{"Operation":18,"Scope":1}`,
		logfields.Duration: 1.5,
		logfields.EndTime:  ts.Format(TimeFormat),
		logfields.Index:    3,
		logfields.Path:     nullString,
	} {
		if got := e.Data[k]; got != want {
			t.Errorf("field %q: expected %v (%T), got %v (%T)", k, want, want, got, got)
		}
	}
}

func TestHookSpanContext(t *testing.T) {
	ctx, span := trace.StartSpan(context.Background(), t.Name(), trace.WithSampler(trace.AlwaysSample()))
	defer span.End()

	e := G(ctx).WithContext(ctx)
	if err := NewHook().Fire(e); err != nil {
		t.Fatal(err)
	}

	sc := span.SpanContext()
	if got := e.Data[logfields.TraceID]; got != sc.TraceID.String() {
		t.Fatalf("expected trace ID %s, got %v", sc.TraceID, got)
	}
	if got := e.Data[logfields.SpanID]; got != sc.SpanID.String() {
		t.Fatalf("expected span ID %s, got %v", sc.SpanID, got)
	}
}

func TestSetEntry(t *testing.T) {
	ctx, e := SetEntry(context.Background(), logrus.Fields{logfields.DeviceID: "id"})
	if G(ctx) != e {
		t.Fatal("expected the context to carry the new entry")
	}
	if got := G(ctx).Data[logfields.DeviceID]; got != "id" {
		t.Fatalf("expected field %q to be %q, got %v", logfields.DeviceID, "id", got)
	}
}
