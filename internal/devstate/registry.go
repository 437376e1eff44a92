package devstate

import "context"

// Registry opens snapshots of the devices known to the system.
type Registry interface {
	// Open returns a snapshot of all devices across all device classes.
	// The caller must Close the returned set exactly once.
	Open(ctx context.Context) (DeviceSet, error)
}

// DeviceSet is an open snapshot of devices. Entries returned by a set are only
// valid until the set is closed.
type DeviceSet interface {
	// Next returns the entry at index. The second return is false once index is
	// past the last device.
	Next(ctx context.Context, index int) (Entry, bool)
	// IdentifierOf returns the device instance ID of entry.
	IdentifierOf(ctx context.Context, entry Entry) (string, error)
	// Stage registers req as the pending class install parameters of entry.
	Stage(ctx context.Context, entry Entry, req *ChangeRequest) error
	// Commit applies the parameters staged for entry.
	Commit(ctx context.Context, entry Entry) error
	// Close releases the snapshot.
	Close() error
}

// Entry addresses one device within a DeviceSet.
type Entry struct {
	// Index is the entry's position in its set.
	Index int
	// Instance is the platform device instance handle (DEVINST on Windows).
	Instance uint32

	ref any
}

// NewEntry returns an Entry carrying a platform specific reference.
func NewEntry(index int, instance uint32, ref any) Entry {
	return Entry{Index: index, Instance: instance, ref: ref}
}

// Ref returns the platform reference passed to [NewEntry].
func (e Entry) Ref() any {
	return e.ref
}
