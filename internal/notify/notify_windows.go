//go:build windows

package notify

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/logfields"
)

// MessageBox shows notifications in a modal, ownerless message box and blocks
// until it is dismissed.
type MessageBox struct{}

var _ Notifier = MessageBox{}

func (MessageBox) Notify(ctx context.Context, title, msg string) error {
	text, err := windows.UTF16PtrFromString(msg)
	if err != nil {
		return errors.Wrap(err, "invalid message text")
	}
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return errors.Wrap(err, "invalid message caption")
	}

	log.G(ctx).WithFields(logrus.Fields{
		logfields.Name: title,
	}).Debug("showing message box")

	if _, err := windows.MessageBox(0, text, caption, windows.MB_OK|windows.MB_ICONERROR|windows.MB_SETFOREGROUND); err != nil {
		return errors.Wrap(err, "MessageBoxW")
	}
	return nil
}
