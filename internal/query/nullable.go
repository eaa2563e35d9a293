package query

import (
	"bytes"
	"encoding/json"
)

// Nullable is a partial-update field for a nullable column. It tells apart
// three inputs: absent (Set is false, column untouched), null (Set with a
// nil Value, column cleared) and a value.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf sets the column to v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null clears the column.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON is only called for keys present in the document, so any
// call marks the field as set.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// SetNullable assigns the field to column when it was supplied, binding
// NULL for a nil Value.
func SetNullable[T any](c *Changes, column string, n Nullable[T]) *Changes {
	if !n.Set {
		return c
	}
	if n.Value == nil {
		return c.Set(column, nil)
	}
	return c.Set(column, *n.Value)
}
