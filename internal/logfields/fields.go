package logfields

const (
	// Identifiers

	Name = "name"

	DeviceID = "device-id"
	Alias    = "alias"
	Instance = "dev-inst"
	Index    = "index"

	// Device state change

	State   = "state"
	Phase   = "phase"
	Request = "request"
	Kind    = "kind"

	// Common Misc

	Path     = "path"
	Scanned  = "scanned"
	Skipped  = "skipped"
	Elevated = "elevated"

	// Time

	Duration  = "duration"
	EndTime   = "endTime"
	StartTime = "startTime"

	// logging and tracing

	TraceID      = "traceID"
	SpanID       = "spanID"
	ParentSpanID = "parentSpanID"
)
