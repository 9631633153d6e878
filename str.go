// Package latin1str provides string types for WINDOWS-1252 (aka Latin-1)
// encoded text.
//
// Values of these types:
//
//   - are not nul-terminated
//   - contain no nul bytes
//   - always decode to UTF-8 without failure
//   - can always be built from ASCII text or from arbitrary bytes
//
// Use them when none of string (UTF-8), []byte (no defined encoding) or a
// nul-terminated C string fits.
//
// There are two types. Str is a borrowed view over bytes it doesn't own,
// String owns its bytes and embeds the Str that views them, so every Str
// method is available on a String as well.
package latin1str

import (
	"bytes"
	"io"

	"github.com/mailgun/latin1str/cp1252"
)

// Str is a borrowed view over WINDOWS-1252 bytes that contain no 0x00. It
// owns nothing; the memory it references must outlive it and must not be
// modified while it is in use. The zero value is the empty string.
//
// Str values are immutable and safe for concurrent readers.
type Str struct {
	b []byte
}

// FromBytesUnchecked wraps b as a Str without looking at it.
//
// The caller must guarantee that b contains no 0x00 byte. Every other
// constructor in this package establishes that itself, use
// FromBytesUntilNul when b comes from an untrusted source.
func FromBytesUnchecked(b []byte) Str {
	return Str{b: b}
}

// FromBytesUntilNul wraps all bytes before the first 0x00 as a Str, or all
// of b if it holds no 0x00. It never fails.
//
//	s := latin1str.FromBytesUntilNul([]byte("Hello\x00World!"))
//	s.Bytes() // []byte("Hello")
func FromBytesUntilNul(b []byte) Str {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return FromBytesUnchecked(b)
}

// New is an alias of FromBytesUntilNul.
//
// Deprecated: Use FromBytesUntilNul instead.
func New(b []byte) Str {
	return FromBytesUntilNul(b)
}

// Bytes returns the bytes of the string. They must not be modified.
func (s Str) Bytes() []byte {
	return s.b
}

// Len returns the number of bytes, which for this encoding is also the
// number of characters.
func (s Str) Len() int {
	return len(s.b)
}

// IsEmpty reports whether the string has no bytes.
func (s Str) IsEmpty() bool {
	return len(s.b) == 0
}

// At returns the byte at index i.
func (s Str) At(i int) byte {
	return s.b[i]
}

// Slice returns the view of bytes [from:to]. It panics on out of range
// indexes, like slicing does.
func (s Str) Slice(from, to int) Str {
	return Str{b: s.b[from:to:to]}
}

// Decode converts the string to UTF-8. It never fails. When the bytes are
// pure ASCII the result borrows s's memory instead of copying it.
//
//	latin1str.FromBytesUntilNul([]byte("Fr\xFChling")).Decode().String() // "Frühling"
func (s Str) Decode() Text {
	text, borrowed := cp1252.Decode(s.b)
	return Text{s: text, borrowed: borrowed}
}

// String returns the decoded text.
func (s Str) String() string {
	return s.Decode().String()
}

// ToOwned copies the bytes into a new String.
func (s Str) ToOwned() String {
	return String{Str: Str{b: bytes.Clone(s.b)}}
}

// Equal reports whether s and o hold the same bytes.
func (s Str) Equal(o Str) bool {
	return bytes.Equal(s.b, o.b)
}

// WriteTo writes the raw bytes, without a terminator, to w.
func (s Str) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.b)
	return int64(n), err
}

// Compare orders a and b lexicographically by their bytes, not by their
// decoded text. The result is 0 if a == b, -1 if a < b, and +1 if a > b.
func Compare(a, b Str) int {
	return bytes.Compare(a.b, b.b)
}

// Text is UTF-8 text produced by Str.Decode. It either borrows the memory of
// the Str it was decoded from or owns a fresh copy; either way it is read-only.
type Text struct {
	s        string
	borrowed bool
}

func (t Text) String() string {
	return t.s
}

// Borrowed reports whether the text shares memory with the decoded Str.
func (t Text) Borrowed() bool {
	return t.borrowed
}
