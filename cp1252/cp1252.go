// Package cp1252 maps between WINDOWS-1252 bytes and UTF-8 text.
//
// The tables are golang.org/x/text's charmap.Windows1252. This package only
// adds the zero-copy fast path for ASCII and fixes the policy for runes the
// code page can't represent.
package cp1252

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mailgun/latin1str/unsafe"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Charmap is the code page every function in this package works with.
var Charmap = charmap.Windows1252

// Decode converts WINDOWS-1252 bytes to UTF-8. Every byte value has a
// mapping so Decode cannot fail. When b is pure ASCII it is already valid
// UTF-8 and the returned text shares b's memory, in which case borrowed is
// true and b must not be modified while the text is in use.
func Decode(b []byte) (text string, borrowed bool) {
	if IsASCII(b) {
		return unsafe.BytesToString(b), true
	}
	out, err := Charmap.NewDecoder().Bytes(b)
	if err != nil {
		// charmap decoders substitute unmapped bytes, they never report errors
		panic(fmt.Errorf("while decoding windows-1252: %w", err))
	}
	return unsafe.BytesToString(out), false
}

// Encode converts UTF-8 text to WINDOWS-1252. Runes without a
// representation are written as decimal HTML character references such as
// "&#9731;", the substitution x/text's HTMLEscapeUnsupported defines.
// Invalid UTF-8 sequences are treated as U+FFFD.
//
// When text is pure ASCII the result aliases text's memory and borrowed is
// true. The returned bytes must never be written to in that case.
func Encode(text string) (b []byte, borrowed bool) {
	if IsASCIIString(text) {
		return unsafe.StringToBytes(text), true
	}
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	enc := encoding.HTMLEscapeUnsupported(Charmap.NewEncoder())
	out, err := enc.Bytes(unsafe.StringToBytes(text))
	if err != nil {
		panic(fmt.Errorf("while encoding windows-1252: %w", err))
	}
	return out, false
}

// DecodeByte returns the rune for a single WINDOWS-1252 byte.
func DecodeByte(b byte) rune {
	return Charmap.DecodeByte(b)
}

// EncodeRune returns the WINDOWS-1252 byte for r, ok is false when the code
// page has no representation for it.
func EncodeRune(r rune) (b byte, ok bool) {
	return Charmap.EncodeRune(r)
}

// IsASCII reports whether every byte in b is below 0x80.
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// IsASCIIString is IsASCII for strings.
func IsASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
