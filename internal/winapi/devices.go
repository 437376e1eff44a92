//go:build windows

package winapi

import (
	"fmt"

	"golang.org/x/sys/windows"
)

//sys cmGetDeviceIDSize(pulLen *uint32, dnDevInst uint32, ulFlags uint32) (cr windows.CONFIGRET) = cfgmgr32.CM_Get_Device_ID_Size
//sys cmGetDeviceID(dnDevInst uint32, buffer *uint16, bufferLen uint32, ulFlags uint32) (cr windows.CONFIGRET) = cfgmgr32.CM_Get_Device_IDW

// BOOL SetupDiChangeState(
//	HDEVINFO         DeviceInfoSet,
//	PSP_DEVINFO_DATA DeviceInfoData
// );
//sys SetupDiChangeState(deviceInfoSet windows.DevInfo, deviceInfoData *windows.DevInfoData) (err error) = setupapi.SetupDiChangeState

// CMGetDeviceIDSize returns the length, in characters and excluding the
// terminating NUL, of the device instance ID of devInst.
func CMGetDeviceIDSize(devInst uint32) (uint32, error) {
	var size uint32
	if cr := cmGetDeviceIDSize(&size, devInst, 0); cr != windows.CR_SUCCESS {
		return 0, fmt.Errorf("CM_Get_Device_ID_Size for devinst %d: %w", devInst, cr)
	}
	return size, nil
}

// CMGetDeviceID returns the device instance ID of devInst.
//
// The ID length is queried first, then the ID is read into a buffer with one
// extra character for the terminating NUL; the same length is passed to the
// fetch call.
func CMGetDeviceID(devInst uint32) (string, error) {
	size, err := CMGetDeviceIDSize(devInst)
	if err != nil {
		return "", err
	}
	buf := make([]uint16, size+1)
	if cr := cmGetDeviceID(devInst, &buf[0], uint32(len(buf)), 0); cr != windows.CR_SUCCESS {
		return "", fmt.Errorf("CM_Get_Device_IDW for devinst %d: %w", devInst, cr)
	}
	return ParseDeviceID(buf)
}
