// Package unsafe converts between strings and byte slices without copying.
//
// Both directions alias memory. The caller is responsible for keeping the
// shared bytes unmodified for as long as either side is in use.
package unsafe

import (
	"unsafe"
)

// BytesToString returns a string that shares b's backing array. The bytes
// passed to BytesToString must not be modified afterwards.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes returns a byte slice over s's backing array. Since Go strings
// are immutable, the returned bytes must never be written to.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// SameMemory reports whether s starts at the first byte of b, that is whether
// one was produced from the other without a copy.
func SameMemory(s string, b []byte) bool {
	if len(s) == 0 || len(b) == 0 {
		return false
	}
	return unsafe.StringData(s) == unsafe.SliceData(b)
}
