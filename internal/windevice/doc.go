// Package windevice implements a device registry on top of the Windows
// SetupAPI and configuration manager (cfgmgr32) APIs.
package windevice
