package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field for a nullable column. Set reports whether the
// field was present at all; a set field with a nil Value clears the column.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a set field holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a set field that clears the column.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// FromPtr treats nil as "leave unchanged".
func FromPtr[T any](v *T) Optional[T] {
	if v == nil {
		return Optional[T]{}
	}
	return Some(*v)
}

// Or returns the patched value when the field is set and current otherwise.
func (o Optional[T]) Or(current *T) *T {
	if o.Set {
		return o.Value
	}
	return current
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
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

// MarshalJSON writes null for a cleared field. Pair it with omitzero to drop
// unset fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
