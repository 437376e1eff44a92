package devstate_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Microsoft/devtoggle/internal/devstate"
	"github.com/Microsoft/devtoggle/internal/errdefs"
)

func TestController_Resolve(t *testing.T) {
	aliases := map[string]string{"webcam": targetID}
	c := devstate.NewController(nil, devstate.WithAliases(aliases))

	// later changes to the caller's map are not observed
	aliases["webcam"] = "changed"

	if got := c.Resolve("webcam"); got != targetID {
		t.Fatalf("expected %q, got %q", targetID, got)
	}
	if got := c.Resolve("Webcam"); got != "Webcam" {
		t.Fatalf("expected alias lookup to be case-sensitive, got %q", got)
	}
	if got := c.Resolve(targetID); got != targetID {
		t.Fatalf("expected %q to pass through, got %q", targetID, got)
	}
}

func TestController_SetStateOpensSetPerCall(t *testing.T) {
	ctx := context.Background()
	reg, set := newRegistry(t)
	c := devstate.NewController(reg, devstate.WithAliases(map[string]string{"webcam": targetID}))

	reg.EXPECT().Open(gomock.Any()).Return(set, nil).Times(2)
	set.EXPECT().Next(gomock.Any(), 0).Return(entryAt(0), true).Times(2)
	set.EXPECT().IdentifierOf(gomock.Any(), entryAt(0)).Return(targetID, nil).Times(2)
	set.EXPECT().Stage(gomock.Any(), entryAt(0), devstate.NewChangeRequest(devstate.Disable)).Return(nil)
	set.EXPECT().Stage(gomock.Any(), entryAt(0), devstate.NewChangeRequest(devstate.Enable)).Return(nil)
	set.EXPECT().Commit(gomock.Any(), entryAt(0)).Return(nil).Times(2)
	set.EXPECT().Close().Return(nil).Times(2)

	if err := c.SetState(ctx, "webcam", devstate.Disable); err != nil {
		t.Fatalf("SetState(webcam, disable): %v", err)
	}
	if err := c.SetState(ctx, targetID, devstate.Enable); err != nil {
		t.Fatalf("SetState(%q, enable): %v", targetID, err)
	}
}

func TestController_UnknownAliasIsNotFound(t *testing.T) {
	ctx := context.Background()
	reg, set := newRegistry(t)
	c := devstate.NewController(reg)

	reg.EXPECT().Open(gomock.Any()).Return(set, nil)
	set.EXPECT().Next(gomock.Any(), 0).Return(entryAt(0), true)
	set.EXPECT().IdentifierOf(gomock.Any(), entryAt(0)).Return(targetID, nil)
	set.EXPECT().Next(gomock.Any(), 1).Return(devstate.Entry{}, false)
	set.EXPECT().Close().Return(nil)

	err := c.SetState(ctx, "webcam", devstate.Disable)
	if !errors.Is(err, errdefs.ErrDeviceNotFound) {
		t.Fatalf("expected %v, got %v", errdefs.ErrDeviceNotFound, err)
	}
}
