// Package nullable tells apart a JSON member that is absent, explicitly null,
// or set to a value.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Field is the zero value when the member was absent from the document.
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Of returns a field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: v}
}

// Null returns a field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// UnmarshalJSON is only invoked when the member is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// HasValue reports whether the member was present with a non-null value.
func (f Field[T]) HasValue() bool {
	return f.Set && f.Valid
}

// Ptr returns nil for null or absent, otherwise a pointer to a copy of the value.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
