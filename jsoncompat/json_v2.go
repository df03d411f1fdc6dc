//go:build goexperiment.jsonv2

// JSON v2 compatibility layer.
package json

import (
	stdjson "encoding/json"
	jsonv2 "encoding/json/v2"
	"io"
)

// Number is the v1 type under both implementations; v2 has no replacement.
type Number = stdjson.Number

// Decoder wraps v2 unmarshal to provide a v1-like Decode interface.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

func (d *Decoder) Decode(v any) error {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	return jsonv2.Unmarshal(data, v)
}

func Marshal(v any) ([]byte, error) {
	return jsonv2.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return jsonv2.Unmarshal(data, v)
}

// DecodeValue decodes a single JSON value from r into the generic form the
// root package wraps. Unlike the v1 build, numbers arrive as float64: v2 has
// no UseNumber equivalent for decoding into any. v2 itself rejects trailing
// input.
func DecodeValue(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var v any
	if err := jsonv2.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
