package latin1str

import (
	"bufio"
	"io"

	"github.com/mailgun/errors"
)

// Reader reads a sequence of nul-terminated strings from an io.Reader.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader buffering r. If r is already a *bufio.Reader it
// is used directly.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{r: br}
	}
	return &Reader{r: bufio.NewReader(r)}
}

// Read returns the next string. A trailing string without a terminator is
// still returned. Once the input is exhausted Read returns io.EOF.
func (r *Reader) Read() (String, error) {
	if _, err := r.r.Peek(1); err != nil {
		return String{}, err
	}
	return ReadCString(r.r)
}

// ReadAll reads every remaining string.
func (r *Reader) ReadAll() ([]String, error) {
	var out []String
	for {
		s, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, s)
	}
}

// Writer writes nul-terminated strings to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes s followed by a 0x00 terminator.
func (w *Writer) Write(s Str) error {
	return WriteCString(w.w, s)
}

// WriteCString writes the bytes of s followed by a 0x00 terminator, the
// format ReadCString reads back.
func WriteCString(w io.Writer, s Str) error {
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "while writing string")
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return errors.Wrap(err, "while writing terminator")
	}
	return nil
}
