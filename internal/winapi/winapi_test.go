package winapi

import (
	"testing"
	"unicode/utf16"
)

func TestParseDeviceID(t *testing.T) {
	targetStrings := []string{
		`USB\VID_1234&PID_5678\6&abc`,
		`ROOT\SYSTEM\0000`,
		`SWD\MMDEVAPI\{0.0.1.00000000}.{8E2F0F5C-1F3A-4E7B-9D3C-2B5C6A7D8E9F}`,
		`HID\VID_046D&PID_C52B&MI_00\7&2A2B9C&0&0000`,
	}
	for _, target := range targetStrings {
		wide := utf16.Encode([]rune(target))

		// exact size plus terminator, as CM_Get_Device_IDW fills it
		buf := append(append([]uint16{}, wide...), 0)
		actual, err := ParseDeviceID(buf)
		if err != nil {
			t.Fatalf("failed to parse device ID %s with %v", target, err)
		}
		if actual != target {
			t.Fatalf("Expected device ID %q, got %q instead", target, actual)
		}

		// trailing space after the terminator is ignored
		padded := make([]uint16, len(wide)+8)
		copy(padded, wide)
		actual, err = ParseDeviceID(padded)
		if err != nil {
			t.Fatalf("failed to parse padded device ID %s with %v", target, err)
		}
		if actual != target {
			t.Fatalf("Expected padded device ID %q, got %q instead", target, actual)
		}
	}
}

func TestParseDeviceIDMissingTerminator(t *testing.T) {
	wide := utf16.Encode([]rune(`USB\VID_1234&PID_5678\6&abc`))
	if _, err := ParseDeviceID(wide); err == nil {
		t.Fatal("Expected an error for a buffer with no null terminator")
	}
	if _, err := ParseDeviceID(nil); err == nil {
		t.Fatal("Expected an error for an empty buffer")
	}
}
