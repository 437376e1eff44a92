package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Microsoft/devtoggle/internal/errdefs"
)

type failingNotifier struct {
	calls int
}

func (n *failingNotifier) Notify(context.Context, string, string) error {
	n.calls++
	return errors.New("no desktop")
}

func TestMessageNamesKind(t *testing.T) {
	for _, kind := range errdefs.Kinds {
		err := fmt.Errorf("set state: %w", kind)
		msg := Message(err)
		first, _, _ := strings.Cut(msg, "\n")
		if want := "Failed to change device state: " + kind.Error(); first != want {
			t.Fatalf("expected first line %q, got %q", want, first)
		}
	}
}

func TestMessageUnknownKind(t *testing.T) {
	msg := Message(errors.New("boom"))
	if !strings.HasPrefix(msg, "Failed to change device state\n") {
		t.Fatalf("unexpected message %q", msg)
	}
	if !strings.HasSuffix(msg, "boom") {
		t.Fatalf("expected message to carry the error, got %q", msg)
	}
}

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &Writer{W: buf}
	if err := w.Notify(context.Background(), Title, "device not found"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "devtoggle: device not found\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFailure(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}

	Failure(ctx, &Writer{W: buf}, errdefs.ErrCommitFailed)
	if !strings.Contains(buf.String(), errdefs.ErrCommitFailed.Error()) {
		t.Fatalf("expected notification to name %q, got %q", errdefs.ErrCommitFailed, buf.String())
	}

	buf.Reset()
	Failure(ctx, &Writer{W: buf}, nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no notification on success, got %q", buf.String())
	}

	n := &failingNotifier{}
	Failure(ctx, n, errdefs.ErrDeviceNotFound)
	if n.calls != 1 {
		t.Fatalf("expected 1 notify call, got %d", n.calls)
	}

	// nil notifier is a no-op
	Failure(ctx, nil, errdefs.ErrDeviceNotFound)
}
