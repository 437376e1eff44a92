package oc

import (
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/logfields"
)

// LogrusExporter writes finished spans as log entries.
//
// A span is logged at info level, or at error level with its status message
// as the error if its status code is not OK. Attributes become fields.
// Annotations and message events are dropped.
type LogrusExporter struct{}

var _ trace.Exporter = &LogrusExporter{}

func (le *LogrusExporter) ExportSpan(s *trace.SpanData) {
	entry := log.L.Dup()

	// attributes are strings, bools or int64s and need no encoding
	data := make(logrus.Fields, len(entry.Data)+len(s.Attributes)+9)
	for k, v := range entry.Data {
		data[k] = v
	}
	for k, v := range s.Attributes {
		data[k] = v
	}
	data[logfields.Name] = s.Name
	data[logfields.TraceID] = s.TraceID.String()
	data[logfields.SpanID] = s.SpanID.String()
	data[logfields.ParentSpanID] = s.ParentSpanID.String()
	data[logfields.StartTime] = s.StartTime
	data[logfields.EndTime] = s.EndTime
	data[logfields.Duration] = s.EndTime.Sub(s.StartTime)
	if s.DroppedAttributeCount > 0 {
		data["droppedAttributes"] = s.DroppedAttributeCount
	}

	level := logrus.InfoLevel
	if s.Status.Code != trace.StatusCodeOK {
		level = logrus.ErrorLevel
		if _, ok := data[logrus.ErrorKey]; !ok {
			data[logrus.ErrorKey] = s.Status.Message
		}
		data["errorCode"] = s.Status.Code
	}

	entry.Data = data
	entry.Time = s.StartTime
	entry.Log(level, "Span")
}
