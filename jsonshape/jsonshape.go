// Package jsonshape converts values to and from JSON text where the target
// shape is statically known.
//
// What:
//
//   - Marshal renders any value as a JSON string.
//   - Unmarshal parses JSON text into a value of the type parameter T,
//     constructing the result directly as T — the shape is fixed at compile
//     time, never patched onto parsed data afterwards.
//   - UnmarshalStrict additionally rejects object keys that T does not
//     declare.
//
// Errors:
//
//   - ErrEncode: the value cannot be represented as JSON.
//   - ErrDecode: the input is not valid JSON for the target shape.
//
// Both wrap the underlying encoding/json error, so errors.Is works on the
// sentinel and the full cause stays inspectable.
package jsonshape

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEncode indicates the value could not be encoded as JSON
// (unsupported type, cyclic data, failing MarshalJSON, ...).
var ErrEncode = errors.New("jsonshape: value not representable as JSON")

// ErrDecode indicates the input text is not valid JSON for the target
// shape (syntax error or type mismatch).
var ErrDecode = errors.New("jsonshape: malformed JSON input")

// Marshal renders v as a JSON string.
//
// Errors: ErrEncode, wrapping the encoder's error.
func Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return string(data), nil
}

// Unmarshal parses JSON text into a freshly constructed value of type T.
// On failure it returns the zero value of T.
//
// Errors: ErrDecode, wrapping the decoder's error.
func Unmarshal[T any](data string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}

// UnmarshalStrict behaves like Unmarshal but rejects object keys that the
// target shape does not declare.
//
// Errors: ErrDecode, wrapping the decoder's error.
func UnmarshalStrict[T any](data string) (T, error) {
	var out T
	dec := json.NewDecoder(strings.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}
