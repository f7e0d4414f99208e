package models

import "encoding/json"

// Optional distinguishes an omitted JSON field from one sent as null.
//
// Set is true whenever the key was present. Null is true when its value
// was the JSON literal null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that was explicitly sent as null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}
