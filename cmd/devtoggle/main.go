//go:build windows

package main

import (
	"fmt"
	"os"

	"github.com/Microsoft/go-winio/pkg/etwlogrus"
	"github.com/sirupsen/logrus"

	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/notify"
	"github.com/Microsoft/devtoggle/internal/winapi"
	"github.com/Microsoft/devtoggle/internal/windevice"
)

func main() {
	logrus.AddHook(log.NewHook())

	app := newApp(&appOptions{
		registry:  windevice.NewRegistry(),
		notifier:  notify.MessageBox{},
		elevated:  winapi.IsElevated,
		enableETW: enableETW,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	})

	// Run() should not return an error because of ExitErrHandler, but just in case ...
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// Hook isn't closed explicitly, as it will exist until process exit.
func enableETW() error {
	hook, err := etwlogrus.NewHook("Microsoft.Windows.DevToggle")
	if err != nil {
		return err
	}
	logrus.AddHook(hook)
	return nil
}
