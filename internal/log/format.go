package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DurationFormat converts a [time.Duration] log entry field to the desired format.
type DurationFormat func(time.Duration) interface{}

func DurationFormatString(d time.Duration) interface{} { return d.String() }

func DurationFormatSeconds(d time.Duration) interface{} { return d.Seconds() }

func DurationFormatMilliseconds(d time.Duration) interface{} { return d.Milliseconds() }

// Format formats an object into a JSON string, without any indentation or
// HTML escapes.
// Context is used to output a log warning if the conversion fails.
//
// This is intended primarily for `trace.StringAttribute()`
func Format(ctx context.Context, v interface{}) string {
	b, err := encode(v)
	if err != nil {
		G(ctx).WithError(err).Warning("could not format value")
		return ""
	}

	return string(b)
}

func encode(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "")

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("could not marshall %T to JSON for logging: %w", v, err)
	}

	// encoder.Encode appends a newline to the end
	return bytes.TrimSpace(buf.Bytes()), nil
}
