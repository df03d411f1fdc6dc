// Package tftparse wraps Teamfight Tactics match-history JSON into navigable
// read-only values and typed match views.
//
// The HTTP request against the match-history API and the JSON decode stay with
// the caller: Wrap and WrapMatch take the already-parsed payload. ParseMatch
// and DecodeMatch cover callers that still hold raw bytes or a stream.
package tftparse

import (
	"fmt"
	"math"
	"sort"

	json "github.com/tftdata/tft-parse/jsoncompat"
)

// Kind classifies the JSON value behind a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is a read-only view over a decoded JSON value. Objects answer Get,
// arrays answer Index and Values, scalars answer the typed getters. Lookups
// for data that is not there fail with an error wrapping ErrKeyNotFound,
// ErrIndexOutOfRange or ErrKindMismatch; nothing is defaulted.
//
// A Value never mutates or copies the tree it views, so a Value and everything
// wrapped from it are safe for concurrent readers.
type Value struct {
	data any
}

// Wrap makes a Value over an already-parsed JSON value: a map[string]any,
// a []any, a string, a number, a bool or nil. Wrapping a Value returns it
// unchanged. Numbers may be float64 (encoding/json), json.Number (decoders
// with UseNumber) or plain Go integers from hand-built trees.
func Wrap(v any) Value {
	if w, ok := v.(Value); ok {
		return w
	}
	return Value{data: v}
}

// Kind reports the JSON kind of the underlying value. Values of types JSON
// decoding never produces report KindInvalid and fail every accessor.
func (v Value) Kind() Kind {
	switch v.data.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case float64, float32, json.Number, int, int32, int64, uint, uint32, uint64:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}
	return KindInvalid
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.data == nil
}

// Interface returns the underlying value as decoded.
func (v Value) Interface() any {
	return v.data
}

// Get returns the wrapped value under key. The key must be present: an absent
// key is an ErrKeyNotFound, a non-object receiver an ErrKindMismatch.
func (v Value) Get(key string) (Value, error) {
	obj, ok := v.data.(map[string]any)
	if !ok {
		return Value{}, fmt.Errorf("get %q on %s value: %w", key, v.Kind(), ErrKindMismatch)
	}
	child, ok := obj[key]
	if !ok {
		return Value{}, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	return Wrap(child), nil
}

// GetPath walks nested objects key by key and returns the wrapped value at
// the end of the path. The first failing lookup is returned as is.
func (v Value) GetPath(keys ...string) (Value, error) {
	cur := v
	for _, key := range keys {
		next, err := cur.Get(key)
		if err != nil {
			return Value{}, err
		}
		cur = next
	}
	return cur, nil
}

// Has reports whether the value is an object containing key.
func (v Value) Has(key string) bool {
	obj, ok := v.data.(map[string]any)
	if !ok {
		return false
	}
	_, ok = obj[key]
	return ok
}

// Keys returns the object's keys in sorted order, or nil for non-objects.
func (v Value) Keys() []string {
	obj, ok := v.data.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Index returns the wrapped element at position i of an array value.
func (v Value) Index(i int) (Value, error) {
	arr, ok := v.data.([]any)
	if !ok {
		return Value{}, fmt.Errorf("index %d on %s value: %w", i, v.Kind(), ErrKindMismatch)
	}
	if i < 0 || i >= len(arr) {
		return Value{}, fmt.Errorf("index %d of %d: %w", i, len(arr), ErrIndexOutOfRange)
	}
	return Wrap(arr[i]), nil
}

// Values returns all elements of an array value, wrapped, in order.
func (v Value) Values() ([]Value, error) {
	arr, ok := v.data.([]any)
	if !ok {
		return nil, fmt.Errorf("%s value is not an array: %w", v.Kind(), ErrKindMismatch)
	}
	out := make([]Value, len(arr))
	for i, el := range arr {
		out[i] = Wrap(el)
	}
	return out, nil
}

// Len returns the element count of an array, the key count of an object, and
// zero for everything else.
func (v Value) Len() int {
	switch data := v.data.(type) {
	case []any:
		return len(data)
	case map[string]any:
		return len(data)
	}
	return 0
}

// String returns the underlying string.
func (v Value) String() (string, error) {
	s, ok := v.data.(string)
	if !ok {
		return "", fmt.Errorf("%s value is not a string: %w", v.Kind(), ErrKindMismatch)
	}
	return s, nil
}

// Bool returns the underlying bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.data.(bool)
	if !ok {
		return false, fmt.Errorf("%s value is not a bool: %w", v.Kind(), ErrKindMismatch)
	}
	return b, nil
}

// Float64 returns the underlying number as a float64.
func (v Value) Float64() (float64, error) {
	switch n := v.data.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%q is not a number: %w", n.String(), ErrKindMismatch)
		}
		return f, nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%s value is not a number: %w", v.Kind(), ErrKindMismatch)
}

// Int64 returns the underlying number as an int64. Fractional numbers fail
// rather than truncate.
func (v Value) Int64() (int64, error) {
	switch n := v.data.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer: %w", n, ErrKindMismatch)
		}
		return int64(n), nil
	case float32:
		f := float64(n)
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%v is not an integer: %w", f, ErrKindMismatch)
		}
		return int64(f), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer: %w", n.String(), ErrKindMismatch)
		}
		return i, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	}
	return 0, fmt.Errorf("%s value is not a number: %w", v.Kind(), ErrKindMismatch)
}

// Int returns the underlying number as an int.
func (v Value) Int() (int, error) {
	i, err := v.Int64()
	if err != nil {
		return 0, err
	}
	return int(i), nil
}

// MarshalJSON re-encodes the underlying value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.data)
}
