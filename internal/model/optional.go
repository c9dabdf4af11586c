package model

import "encoding/json"

// Optional is a JSON field that remembers whether it was present in the
// payload. Present with a nil Value means the client sent an explicit null.
type Optional[T any] struct {
	Value   *T
	Present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: &v, Present: true}
}

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// UnmarshalJSON is only invoked for keys that appear in the payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// IsSet reports whether the field was present with a non-null value.
func (o Optional[T]) IsSet() bool {
	return o.Present && o.Value != nil
}
