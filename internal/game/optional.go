package game

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a key that was absent from a snapshot payload from
// one that was present with a null value. An absent key leaves the local
// field untouched; a present key always overwrites, null meaning empty.
type Optional[T any] struct {
	Present bool
	Value   T
}

// Some wraps a value as a present optional.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Present: true, Value: value}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
