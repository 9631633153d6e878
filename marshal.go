package latin1str

import (
	"database/sql/driver"

	"github.com/mailgun/errors"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler. Str serializes as its
// decoded text, so encoding/json emits a JSON string.
func (s Str) MarshalText() ([]byte, error) {
	return []byte(s.Decode().String()), nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Str) MarshalYAML() (interface{}, error) {
	return s.Decode().String(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by encoding text.
func (s *String) UnmarshalText(text []byte) error {
	*s = Encode(string(text)).IntoOwned()
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (s *String) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: cannot unmarshal YAML node of kind %d into latin1str.String",
			value.Line, value.Kind)
	}
	var text string
	if err := value.Decode(&text); err != nil {
		return errors.Wrap(err, "while decoding YAML scalar")
	}
	*s = Encode(text).IntoOwned()
	return nil
}

// Value implements driver.Valuer. The database receives the raw
// WINDOWS-1252 bytes.
func (s String) Value() (driver.Value, error) {
	return s.Bytes(), nil
}

// Scan implements sql.Scanner. A []byte column is taken as WINDOWS-1252 and
// copied up to the first 0x00, a string column is taken as UTF-8 and
// encoded. NULL scans as the empty string.
func (s *String) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = String{}
	case []byte:
		*s = FromBytesUntilNul(v).ToOwned()
	case string:
		*s = Encode(v).IntoOwned()
	default:
		return errors.Errorf("cannot scan %T into latin1str.String", src)
	}
	return nil
}
