package cp1252_test

import (
	"testing"

	"github.com/mailgun/latin1str/cp1252"
	"github.com/mailgun/latin1str/unsafe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bytes the code page leaves undefined; x/text may not map them back to themselves.
var undefined = map[byte]bool{0x81: true, 0x8D: true, 0x8F: true, 0x90: true, 0x9D: true}

func TestDecode(t *testing.T) {
	for _, tt := range []struct {
		name     string
		in       []byte
		want     string
		borrowed bool
	}{{
		name:     "ascii",
		in:       []byte("Hello World!"),
		want:     "Hello World!",
		borrowed: true,
	}, {
		name:     "u umlaut",
		in:       []byte("Fr\xFChling"),
		want:     "Frühling",
		borrowed: false,
	}, {
		name:     "euro sign",
		in:       []byte{0x80},
		want:     "€",
		borrowed: false,
	}, {
		name:     "smart quotes",
		in:       []byte{0x93, 'a', 0x94},
		want:     "“a”",
		borrowed: false,
	}, {
		name:     "empty",
		in:       nil,
		want:     "",
		borrowed: true,
	}} {
		t.Run(tt.name, func(t *testing.T) {
			got, borrowed := cp1252.Decode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.borrowed, borrowed)
		})
	}
}

func TestDecodeBorrowsASCII(t *testing.T) {
	in := []byte("plain")
	got, borrowed := cp1252.Decode(in)
	require.True(t, borrowed)
	assert.True(t, unsafe.SameMemory(got, in))
}

func TestEncode(t *testing.T) {
	for _, tt := range []struct {
		name     string
		in       string
		want     []byte
		borrowed bool
	}{{
		name:     "ascii",
		in:       "Hello World!",
		want:     []byte("Hello World!"),
		borrowed: true,
	}, {
		name: "u umlaut",
		in:   "Frühling",
		want: []byte("Fr\xFChling"),
	}, {
		name: "single u umlaut",
		in:   "ü",
		want: []byte{0xFC},
	}, {
		name: "euro sign",
		in:   "5€",
		want: []byte{'5', 0x80},
	}, {
		name: "unrepresentable rune",
		in:   "a☃b",
		want: []byte("a&#9731;b"),
	}, {
		name: "invalid utf-8",
		in:   "a\xFFb",
		want: []byte("a&#65533;b"),
	}} {
		t.Run(tt.name, func(t *testing.T) {
			got, borrowed := cp1252.Encode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.borrowed, borrowed)
		})
	}
}

func TestEncodeBorrowsASCII(t *testing.T) {
	in := "plain text"
	got, borrowed := cp1252.Encode(in)
	require.True(t, borrowed)
	assert.True(t, unsafe.SameMemory(in, got))
}

func TestEveryByteDecodes(t *testing.T) {
	for i := 1; i < 256; i++ {
		b := byte(i)
		text, _ := cp1252.Decode([]byte{b})
		assert.NotEmpty(t, text)

		if undefined[b] {
			continue
		}
		r := cp1252.DecodeByte(b)
		back, ok := cp1252.EncodeRune(r)
		assert.True(t, ok, "byte 0x%02X", b)
		assert.Equal(t, b, back, "byte 0x%02X", b)
	}
}

func TestRoundTripStabilizes(t *testing.T) {
	all := make([]byte, 0, 255)
	for i := 1; i < 256; i++ {
		all = append(all, byte(i))
	}

	text, _ := cp1252.Decode(all)
	once, _ := cp1252.Encode(text)
	text2, _ := cp1252.Decode(once)
	twice, _ := cp1252.Encode(text2)
	assert.Equal(t, once, twice)
}

func TestIsASCII(t *testing.T) {
	assert.True(t, cp1252.IsASCII([]byte("abc")))
	assert.True(t, cp1252.IsASCII(nil))
	assert.False(t, cp1252.IsASCII([]byte{'a', 0x80}))
	assert.True(t, cp1252.IsASCIIString("abc"))
	assert.False(t, cp1252.IsASCIIString("ü"))
}
