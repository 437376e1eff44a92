package log

import (
	"reflect"
	"time"

	"github.com/containerd/log"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/Microsoft/devtoggle/internal/logfields"
)

const nullString = "null"

// TimeFormat is the layout of log entry timestamps and [time.Time] fields.
const TimeFormat = log.RFC3339NanoFixed

// Hook flattens the fields of a [logrus.Entry] before it is written.
//
// Entries go to stderr or to ETW, and the ETW hook only understands scalar
// values, so composite fields such as change requests are rendered as JSON.
type Hook struct {
	// EncodeAsJSON renders structs, maps, arrays and slices as JSON strings.
	//
	// Default is true.
	EncodeAsJSON bool

	// TimeFormat is the layout for [time.Time] fields. Empty leaves them as is.
	//
	// Default is [TimeFormat].
	TimeFormat string

	// DurationFormat converts [time.Duration] fields. Nil leaves them as is.
	//
	// Default is [DurationFormatSeconds].
	DurationFormat DurationFormat

	// AddSpanContext adds [logfields.TraceID] and [logfields.SpanID] from the
	// span in the entry's context, if there is one.
	AddSpanContext bool
}

var _ logrus.Hook = &Hook{}

func NewHook() *Hook {
	return &Hook{
		EncodeAsJSON:   true,
		TimeFormat:     TimeFormat,
		DurationFormat: DurationFormatSeconds,
		AddSpanContext: true,
	}
}

func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *Hook) Fire(e *logrus.Entry) error {
	for k, v := range e.Data {
		if nv, ok := h.flatten(v); ok {
			e.Data[k] = nv
		} else if err, isErr := nv.(error); isErr && k != logrus.ErrorKey {
			e.Data[k+"-"+logrus.ErrorKey] = err.Error()
		}
	}
	if h.AddSpanContext {
		addSpanContext(e)
	}
	return nil
}

// flatten returns the replacement for a field value and true, or false if the
// value is kept. If encoding fails the returned value is the error.
func (h *Hook) flatten(v interface{}) (interface{}, bool) {
	switch vv := v.(type) {
	case nil:
		return nullString, true
	case error:
		// formatters handle errors themselves
		return nil, false
	case time.Time:
		if h.TimeFormat == "" {
			return nil, false
		}
		return vv.Format(h.TimeFormat), true
	case time.Duration:
		if h.DurationFormat == nil {
			return nil, false
		}
		if d := h.DurationFormat(vv); d != nil {
			return d, true
		}
		return nil, false
	case interface{ String() string }:
		// states, phases and other enums
		return nil, false
	}

	if !h.EncodeAsJSON {
		return nil, false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nullString, true
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Array, reflect.Slice:
	default:
		return nil, false
	}
	b, err := encode(v)
	if err != nil {
		return err, false
	}
	return string(b), true
}

func addSpanContext(e *logrus.Entry) {
	if e.Context == nil {
		return
	}
	span := trace.FromContext(e.Context)
	if span == nil {
		return
	}
	sc := span.SpanContext()
	e.Data[logfields.TraceID] = sc.TraceID.String()
	e.Data[logfields.SpanID] = sc.SpanID.String()
}
