package revenuecat

import (
	"bytes"
	"encoding/json"
)

// Nullable is a three-state field for request types whose wire format
// distinguishes an absent key from an explicit null from a value. Some
// endpoints (notably the offering override) treat `"offering_id": null` as
// "clear the override", which a plain *string with omitempty cannot express.
//
// The zero value is absent. Use NullableOf for a value and Null for an
// explicit null.
type Nullable[T any] struct {
	set   bool
	valid bool
	value T
}

// NullableOf returns a Nullable carrying the given value.
func NullableOf[T any](value T) Nullable[T] {
	return Nullable[T]{set: true, valid: true, value: value}
}

// Null returns a Nullable that serializes as an explicit JSON null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true}
}

// IsSet reports whether the field should appear on the wire at all.
func (n Nullable[T]) IsSet() bool {
	return n.set
}

// Value returns the carried value and whether it is non-null.
func (n Nullable[T]) Value() (T, bool) {
	return n.value, n.set && n.valid
}

// MarshalJSON implements json.Marshaler. Absence must be handled by the
// enclosing type's marshaller (see AssignOfferingRequest); this method only
// distinguishes null from value.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.set = true

	if bytes.Equal(data, []byte("null")) {
		n.valid = false

		return nil
	}

	err := json.Unmarshal(data, &n.value)
	if err != nil {
		return err
	}

	n.valid = true

	return nil
}
