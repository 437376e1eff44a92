//go:build windows

package windevice

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/sys/windows"

	"github.com/Microsoft/devtoggle/internal/devstate"
	"github.com/Microsoft/devtoggle/internal/errdefs"
)

// firstDeviceID returns the instance ID of the first enumerated device whose ID
// can be read.
func firstDeviceID(t *testing.T, ctx context.Context, set devstate.DeviceSet) (int, string) {
	t.Helper()
	for i := 0; ; i++ {
		e, ok := set.Next(ctx, i)
		if !ok {
			t.Skip("no device with a readable instance ID")
		}
		if e.Index != i {
			t.Fatalf("expected entry index %d, got %d", i, e.Index)
		}
		id, err := set.IdentifierOf(ctx, e)
		if err != nil {
			if !errors.Is(err, errdefs.ErrIdentifierUnavailable) {
				t.Fatalf("expected %v, got %v", errdefs.ErrIdentifierUnavailable, err)
			}
			continue
		}
		if id == "" {
			t.Fatalf("entry %d has an empty instance ID", i)
		}
		return i, id
	}
}

func TestRegistryLookupFindsEnumeratedDevice(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	set, err := reg.Open(ctx)
	if err != nil {
		t.Fatalf("failed to open device set: %s", err)
	}
	defer set.Close()

	idx, id := firstDeviceID(t, ctx, set)

	e, err := devstate.Lookup(ctx, set, id)
	if err != nil {
		t.Fatalf("failed to look up %q: %s", id, err)
	}
	if e.Index != idx {
		t.Fatalf("expected %q at index %d, got %d", id, idx, e.Index)
	}
}

func TestRegistryUnknownDevice(t *testing.T) {
	ctx := context.Background()

	err := devstate.SetState(ctx, NewRegistry(), `DEVTOGGLE\DOES_NOT_EXIST\0000`, devstate.Disable)
	if !errors.Is(err, errdefs.ErrDeviceNotFound) {
		t.Fatalf("expected %v, got %v", errdefs.ErrDeviceNotFound, err)
	}
}

func TestDeviceSetClose(t *testing.T) {
	ctx := context.Background()
	set, err := NewRegistry().Open(ctx)
	if err != nil {
		t.Fatalf("failed to open device set: %s", err)
	}
	if err := set.Close(); err != nil {
		t.Fatalf("failed to close device set: %s", err)
	}
	if err := set.Close(); err == nil {
		t.Fatal("expected second close to fail")
	}
	if _, ok := set.Next(ctx, 0); ok {
		t.Fatal("expected no entries from a closed set")
	}
}

func TestDICSState(t *testing.T) {
	for _, tc := range []struct {
		state devstate.State
		want  windows.DICS_STATE
	}{
		{devstate.Enable, windows.DICS_ENABLE},
		{devstate.Disable, windows.DICS_DISABLE},
	} {
		got, err := dicsState(tc.state)
		if err != nil {
			t.Fatalf("dicsState(%v): %s", tc.state, err)
		}
		if got != tc.want {
			t.Fatalf("dicsState(%v): expected %d, got %d", tc.state, tc.want, got)
		}
	}
	if _, err := dicsState(0); !errors.Is(err, errdefs.ErrInvalidAction) {
		t.Fatalf("expected %v, got %v", errdefs.ErrInvalidAction, err)
	}
}

func TestStageRejectsForeignEntry(t *testing.T) {
	ctx := context.Background()
	set, err := NewRegistry().Open(ctx)
	if err != nil {
		t.Fatalf("failed to open device set: %s", err)
	}
	defer set.Close()

	err = set.Stage(ctx, devstate.NewEntry(0, 1, nil), devstate.NewChangeRequest(devstate.Disable))
	if err == nil {
		t.Fatal("expected staging an entry with no device reference to fail")
	}
}
