package bale

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Opt is a three-valued optional: a field may be absent from the payload,
// explicitly null, or carry a value. The zero value means "absent", which
// keeps absent wire fields distinguishable from explicit nulls after
// decoding. Opt values are comparable whenever T is.
type Opt[T any] struct {
	value T
	state optState
}

type optState uint8

const (
	optMissing optState = iota
	optNull
	optValue
)

// Some returns an Opt carrying the value.
func Some[T any](value T) Opt[T] {
	return Opt[T]{value: value, state: optValue}
}

// Null returns an explicitly null Opt, distinct from the zero ("absent") value.
func Null[T any]() Opt[T] {
	return Opt[T]{state: optNull}
}

// Get returns the contained value, if any.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.state == optValue
}

// Missing reports whether the field was absent from the payload.
func (o Opt[T]) Missing() bool {
	return o.state == optMissing
}

// IsNull reports whether the field was an explicit null.
func (o Opt[T]) IsNull() bool {
	return o.state == optNull
}

// Or returns the contained value or the fallback.
func (o Opt[T]) Or(fallback T) T {
	if o.state == optValue {
		return o.value
	}
	return fallback
}

func (o Opt[T]) String() string {
	switch o.state {
	case optNull:
		return "null"
	case optValue:
		return fmt.Sprint(o.value)
	default:
		return "<missing>"
	}
}

func (o Opt[T]) queryParam() (string, bool) {
	if o.state != optValue {
		return "", false
	}
	return fmt.Sprint(o.value), true
}

var jsonNull = []byte("null")

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*o = Null[T]()
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}

// MarshalJSON writes the contained value, or null for both the null and
// the absent states: the wire format has no way to express the difference
// on the encode path.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.state != optValue {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}
