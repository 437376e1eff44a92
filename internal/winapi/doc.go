// Package winapi contains the configuration manager and SetupAPI bindings that
// golang.org/x/sys/windows does not provide.
package winapi

//go:generate go tool github.com/Microsoft/go-winio/tools/mkwinsyscall -output zsyscall_windows.go ./*.go
