// Package devstate finds a device by its instance ID and changes its
// enabled/disabled state.
//
// The package is platform neutral: it drives a [Registry], which produces a
// [DeviceSet] snapshot of every device known to the system. [SetState] opens
// the snapshot, scans it for the first entry whose identifier matches exactly,
// stages a property-change [ChangeRequest] for that entry and commits it. The
// snapshot is always closed before [SetState] returns.
//
// The Windows implementation of [Registry] lives in internal/windevice.
package devstate

//go:generate go tool go.uber.org/mock/mockgen -source=registry.go -package=mock -destination=mock/mock_registry.go
