package dbent

import "reflect"

type entityState uint8

const (
	stateEmpty entityState = iota
	stateKey
	stateData
)

// Entity is a reference to a single related record in exactly one of three
// states: by key (only the foreign key is known), by value (the record was
// fetched or created), or empty (NULL column, nothing joined). The zero
// value is empty.
//
// T is the record type as it satisfies Keyed, which for generated
// implementations is the pointer type:
//
//	ref := dbent.EntityOf[int64](&Person{ID: dbent.NewKey(int64(7))})
//
// Keeping the payload behind a pointer keeps the Entity's size independent
// of the record's size, and the Entity treats the record it was given as
// exclusively owned.
type Entity[K comparable, T Keyed[K]] struct {
	state entityState
	key   Key[K]
	data  T
}

// EntityOf returns an Entity in the by-value state, taking ownership of the
// record.
func EntityOf[K comparable, T Keyed[K]](record T) Entity[K, T] {
	return Entity[K, T]{state: stateData, data: record}
}

// KeyEntity returns an Entity in the by-key state. The key may itself be
// unset, which models a known reference slot whose value is missing.
func KeyEntity[T Keyed[K], K comparable](key Key[K]) Entity[K, T] {
	return Entity[K, T]{state: stateKey, key: key}
}

// Key returns the key wrapper for the reference: the wrapped key verbatim in
// the by-key state, the record's own key in the by-value state, and
// ErrEntityEmpty when empty.
func (e *Entity[K, T]) Key() (*Key[K], error) {
	switch e.state {
	case stateKey:
		return &e.key, nil
	case stateData:
		return e.data.Key()
	default:
		return nil, ErrEntityEmpty
	}
}

// Data returns the record. It fails with ErrEntityNotFetched in the by-key
// state and ErrEntityEmpty when empty. The returned record is the Entity's
// own payload, so mutations through it are visible to later accesses.
func (e *Entity[K, T]) Data() (T, error) {
	var zero T
	switch e.state {
	case stateData:
		return e.data, nil
	case stateKey:
		return zero, ErrEntityNotFetched
	default:
		return zero, ErrEntityEmpty
	}
}

// IsByKey reports whether only the key is known.
func (e *Entity[K, T]) IsByKey() bool { return e.state == stateKey }

// IsByValue reports whether the record itself is held.
func (e *Entity[K, T]) IsByValue() bool { return e.state == stateData }

// IsEmpty reports whether nothing is set.
func (e *Entity[K, T]) IsEmpty() bool { return e.state == stateEmpty }

// SetKey replaces the Entity with the by-key state.
func (e *Entity[K, T]) SetKey(key Key[K]) {
	*e = Entity[K, T]{state: stateKey, key: key}
}

// SetData replaces the Entity with the by-value state, taking ownership of
// the record.
func (e *Entity[K, T]) SetData(record T) {
	*e = Entity[K, T]{state: stateData, data: record}
}

// SetEmpty replaces the Entity with the empty state.
func (e *Entity[K, T]) SetEmpty() {
	*e = Entity[K, T]{}
}

// Equal reports whether both references are in the same state with equal
// payloads. Records are compared deeply, following the payload pointer.
func (e Entity[K, T]) Equal(other Entity[K, T]) bool {
	if e.state != other.state || e.key != other.key {
		return false
	}
	if e.state == stateData {
		return reflect.DeepEqual(e.data, other.data)
	}
	return true
}

// Clone returns a copy of the reference. In the by-value state the record is
// copied into a fresh allocation, so the clone does not alias the original's
// payload. The record copy itself is shallow.
func (e Entity[K, T]) Clone() Entity[K, T] {
	c := e
	if e.state == stateData {
		c.data = clonePayload(e.data)
	}
	return c
}

// clonePayload copies a pointer-typed payload into a new allocation. Non-nil
// pointers get a fresh pointee; everything else is returned as-is, since
// value payloads are already copied by assignment.
func clonePayload[T any](v T) T {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return v
	}
	c := reflect.New(rv.Elem().Type())
	c.Elem().Set(rv.Elem())
	return c.Interface().(T)
}
