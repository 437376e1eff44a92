//go:build windows

package windevice

import (
	"context"
	"errors"
	"fmt"
	"unsafe"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/Microsoft/devtoggle/internal/devstate"
	"github.com/Microsoft/devtoggle/internal/errdefs"
	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/logfields"
	"github.com/Microsoft/devtoggle/internal/winapi"
)

// Registry opens device information sets covering every device class on the
// local machine.
type Registry struct{}

var _ devstate.Registry = &Registry{}

func NewRegistry() *Registry {
	return &Registry{}
}

// Open returns a snapshot of all devices known to the system, present or not.
func (*Registry) Open(ctx context.Context) (devstate.DeviceSet, error) {
	h, err := windows.SetupDiGetClassDevsEx(nil, "", 0, windows.DIGCF_ALLCLASSES, 0, "")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "SetupDiGetClassDevsEx")
	}
	log.G(ctx).Trace("opened device information set")
	return &deviceSet{h: h}, nil
}

type deviceSet struct {
	h      windows.DevInfo
	closed bool
}

var _ devstate.DeviceSet = &deviceSet{}

func (s *deviceSet) Next(ctx context.Context, index int) (devstate.Entry, bool) {
	if s.closed {
		return devstate.Entry{}, false
	}
	data, err := s.h.EnumDeviceInfo(index)
	if err != nil {
		if !errors.Is(err, windows.ERROR_NO_MORE_ITEMS) {
			log.G(ctx).WithField(logfields.Index, index).WithError(err).Warning("device enumeration stopped early")
		}
		return devstate.Entry{}, false
	}
	return devstate.NewEntry(index, uint32(data.DevInst), data), true
}

func (s *deviceSet) IdentifierOf(ctx context.Context, entry devstate.Entry) (string, error) {
	id, err := winapi.CMGetDeviceID(entry.Instance)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errdefs.ErrIdentifierUnavailable, err)
	}
	return id, nil
}

func (s *deviceSet) Stage(ctx context.Context, entry devstate.Entry, req *devstate.ChangeRequest) error {
	data, err := s.devInfoData(entry)
	if err != nil {
		return err
	}
	state, err := dicsState(req.State)
	if err != nil {
		return err
	}

	params := windows.PropChangeParams{
		ClassInstallHeader: *windows.MakeClassInstallHeader(windows.DI_FUNCTION(req.Operation)),
		StateChange:        state,
		Scope:              windows.DICS_FLAG(req.Scope),
		HwProfile:          req.HardwareProfile,
	}
	log.G(ctx).WithFields(logrus.Fields{
		logfields.Instance: entry.Instance,
		logfields.Request:  req,
	}).Trace("SetupDiSetClassInstallParams")
	if err := s.h.SetClassInstallParams(data, &params.ClassInstallHeader, uint32(unsafe.Sizeof(params))); err != nil {
		return pkgerrors.Wrapf(err, "SetupDiSetClassInstallParams for devinst %d", entry.Instance)
	}
	return nil
}

func (s *deviceSet) Commit(ctx context.Context, entry devstate.Entry) error {
	data, err := s.devInfoData(entry)
	if err != nil {
		return err
	}
	log.G(ctx).WithField(logfields.Instance, entry.Instance).Trace("SetupDiChangeState")
	if err := winapi.SetupDiChangeState(s.h, data); err != nil {
		return pkgerrors.Wrapf(err, "SetupDiChangeState for devinst %d", entry.Instance)
	}
	return nil
}

// Close destroys the device information set. Entries obtained from the set
// must not be used afterwards.
func (s *deviceSet) Close() error {
	if s.closed {
		return errors.New("device information set already closed")
	}
	s.closed = true
	if err := s.h.Close(); err != nil {
		return pkgerrors.Wrap(err, "SetupDiDestroyDeviceInfoList")
	}
	return nil
}

func (s *deviceSet) devInfoData(entry devstate.Entry) (*windows.DevInfoData, error) {
	if s.closed {
		return nil, errors.New("device information set already closed")
	}
	data, ok := entry.Ref().(*windows.DevInfoData)
	if !ok || data == nil {
		return nil, fmt.Errorf("entry %d does not reference a device in this set", entry.Index)
	}
	return data, nil
}

func dicsState(s devstate.State) (windows.DICS_STATE, error) {
	switch s {
	case devstate.Enable:
		return windows.DICS_ENABLE, nil
	case devstate.Disable:
		return windows.DICS_DISABLE, nil
	}
	return 0, fmt.Errorf("%w: no DICS state for %v", errdefs.ErrInvalidAction, s)
}
