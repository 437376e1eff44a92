package winapi

import (
	"errors"
	"unicode/utf16"
)

// ParseDeviceID decodes a NUL-terminated UTF-16 device instance ID returned by
// the configuration manager. Everything from the first NUL on is dropped, so
// the buffer may be larger than the ID it holds.
func ParseDeviceID(buf []uint16) (string, error) {
	for i, c := range buf {
		if c == 0 {
			return string(utf16.Decode(buf[:i])), nil
		}
	}
	return "", errors.New("cannot convert device ID, missing null terminator")
}
