//go:build !windows

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/Microsoft/devtoggle/internal/devstate"
)

// unsupportedRegistry fails every request with [errdefs.ErrRegistryUnavailable].
type unsupportedRegistry struct{}

func (unsupportedRegistry) Open(context.Context) (devstate.DeviceSet, error) {
	return nil, fmt.Errorf("device configuration is not supported on %s", runtime.GOOS)
}

func main() {
	app := newApp(&appOptions{
		registry: unsupportedRegistry{},
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}
