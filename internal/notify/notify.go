// Package notify reports device state change failures to the user.
package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Microsoft/devtoggle/internal/devstate"
	"github.com/Microsoft/devtoggle/internal/log"
)

// Title is the caption of failure notifications.
const Title = "devtoggle"

// Notifier shows a message to the user.
type Notifier interface {
	Notify(ctx context.Context, title, msg string) error
}

// Message returns the text shown for a failed state change. The first line
// names the failure kind; the second carries the full error.
func Message(err error) string {
	b := &strings.Builder{}
	b.WriteString("Failed to change device state")
	if k := devstate.KindOf(err); k != nil {
		fmt.Fprintf(b, ": %s", k)
	}
	if err != nil {
		fmt.Fprintf(b, "\n\n%s", err)
	}
	return b.String()
}

// Failure sends the notification for err through n. Errors from n are logged.
func Failure(ctx context.Context, n Notifier, err error) {
	if n == nil || err == nil {
		return
	}
	if nerr := n.Notify(ctx, Title, Message(err)); nerr != nil {
		log.G(ctx).WithError(nerr).Warn("failed to notify user")
	}
}

// Writer writes notifications to an [io.Writer], one "title: message" block
// per call.
type Writer struct {
	W io.Writer
}

var _ Notifier = &Writer{}

func (w *Writer) Notify(_ context.Context, title, msg string) error {
	_, err := fmt.Fprintf(w.W, "%s: %s\n", title, msg)
	return err
}

// Nop discards notifications.
type Nop struct{}

var _ Notifier = Nop{}

func (Nop) Notify(context.Context, string, string) error { return nil }
