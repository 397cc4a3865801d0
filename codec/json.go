// Package codec converts between wire bytes and generic JSON values.
//
// Numbers decode as json.Number so integral identifiers keep full precision;
// the schema engine normalises them afterwards. Encoding never escapes HTML.
package codec

import (
	"bytes"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// Number is the representation of JSON numbers produced by Unmarshal.
type Number = j.Number

// Unmarshal decodes data into a generic value (maps, lists, strings, bools,
// Number and nil).
func Unmarshal(data []byte) (any, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads exactly one JSON value from r.
func Decode(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	return v, nil
}

// Marshal encodes v without HTML escaping and without a trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Encode writes v to w followed by a newline.
func Encode(w io.Writer, v any) error {
	enc := j.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}
	return nil
}

// MarshalIndent is Marshal with two-space indentation, for CLI output.
func MarshalIndent(v any) ([]byte, error) {
	b, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	return b, nil
}

// Valid reports whether data is a single well-formed JSON value.
func Valid(data []byte) bool { return j.Valid(data) }
