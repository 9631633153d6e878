package latin1str

import (
	"io"

	"github.com/mailgun/errors"
	"github.com/mailgun/latin1str/cp1252"
)

// String is an owned WINDOWS-1252 string with no 0x00 bytes. It embeds the
// Str viewing its own storage, so s.Str is a zero-cost view whose lifetime
// is tied to s.
//
// A String is never modified after construction.
type String struct {
	Str
}

// NewStringUnchecked takes ownership of b without looking at it. The caller
// must guarantee that b contains no 0x00 byte and must not use b afterwards.
func NewStringUnchecked(b []byte) String {
	return String{Str: FromBytesUnchecked(b)}
}

// Encode converts UTF-8 text to WINDOWS-1252. It never fails.
//
// Pure ASCII text is returned borrowed, sharing text's memory. Anything else
// is encoded into a new owned buffer; runes the code page can't represent
// come out as HTML character references ("☃" becomes "&#9731;"). A U+0000
// in text ends the result, as it would in FromBytesUntilNul.
//
//	latin1str.Encode("Frühling").Bytes() // []byte("Fr\xFChling")
func Encode(text string) Cow {
	b, borrowed := cp1252.Encode(text)
	s := FromBytesUntilNul(b)
	return Cow{Str: s, owned: !borrowed}
}

// ByteReader is the source ReadCString reads from. *bufio.Reader and
// *bytes.Buffer both implement it.
type ByteReader interface {
	ReadBytes(delim byte) ([]byte, error)
}

// ReadCString reads from r up to and including the next 0x00. The
// terminator is consumed but not part of the result. Running out of input
// before a terminator is not an error: what was read is returned. Any other
// error from r is returned as is.
func ReadCString(r ByteReader) (String, error) {
	b, err := r.ReadBytes(0)
	if err != nil && !errors.Is(err, io.EOF) {
		return String{}, err
	}
	if n := len(b); n > 0 && b[n-1] == 0 {
		b = b[:n-1]
	}
	// ReadBytes stops at the first 0x00 so none is left in b
	return NewStringUnchecked(b), nil
}

// Cow is the result of Encode: either a Str borrowing the caller's memory or
// a freshly owned string.
type Cow struct {
	Str
	owned bool
}

// Owned reports whether the Cow holds its own storage.
func (c Cow) Owned() bool {
	return c.owned
}

// IntoOwned returns c as a String, copying the bytes only when they are
// borrowed.
func (c Cow) IntoOwned() String {
	if c.owned {
		return String{Str: c.Str}
	}
	return c.Str.ToOwned()
}

// StringFrom is Cow.IntoOwned.
func StringFrom(c Cow) String {
	return c.IntoOwned()
}
