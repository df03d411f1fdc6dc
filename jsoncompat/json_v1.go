//go:build !goexperiment.jsonv2

// Package json bridges encoding/json and encoding/json/v2 so the library
// builds the same against either implementation. The default build uses v1.
package json

import (
	stdjson "encoding/json"
	"errors"
	"io"
)

type (
	Decoder = stdjson.Decoder
	Number  = stdjson.Number
)

func NewDecoder(r io.Reader) *Decoder {
	return stdjson.NewDecoder(r)
}

func Marshal(v any) ([]byte, error) {
	return stdjson.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return stdjson.Unmarshal(data, v)
}

// DecodeValue decodes a single JSON value from r into the generic form the
// root package wraps: map[string]any objects, []any arrays, Number numbers.
// Trailing non-whitespace input is an error.
func DecodeValue(r io.Reader) (any, error) {
	dec := stdjson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}
