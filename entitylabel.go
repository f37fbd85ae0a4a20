package dbent

import "reflect"

// EntityLabel is a reference to a single related record whose by-key state
// also caches a display label. It is useful when a list view needs the name
// of a related record but nothing else, avoiding a join just to render it.
// The zero value is empty.
//
// As with Entity, T is the record type as it satisfies both capabilities,
// typically the pointer type.
type EntityLabel[K comparable, T KeyedLabeled[K, L], L any] struct {
	state entityState
	key   Key[K]
	label L
	data  T
}

// EntityLabelOf returns an EntityLabel in the by-value state, taking
// ownership of the record.
func EntityLabelOf[K comparable, L any, T KeyedLabeled[K, L]](record T) EntityLabel[K, T, L] {
	return EntityLabel[K, T, L]{state: stateData, data: record}
}

// KeyEntityLabel returns an EntityLabel in the by-key state, carrying the
// key and the cached label. The key may itself be unset; the label keeps
// the reference renderable even then.
func KeyEntityLabel[T KeyedLabeled[K, L], K comparable, L any](key Key[K], label L) EntityLabel[K, T, L] {
	return EntityLabel[K, T, L]{state: stateKey, key: key, label: label}
}

// Key returns the key wrapper for the reference: the wrapped key verbatim in
// the by-key state, the record's own key in the by-value state, and
// ErrEntityLabelEmpty when empty.
func (e *EntityLabel[K, T, L]) Key() (*Key[K], error) {
	switch e.state {
	case stateKey:
		return &e.key, nil
	case stateData:
		return e.data.Key()
	default:
		return nil, ErrEntityLabelEmpty
	}
}

// Label returns the display label: the cached one in the by-key state, the
// record's own label in the by-value state, and ErrEntityLabelEmpty when
// empty.
func (e *EntityLabel[K, T, L]) Label() (*L, error) {
	switch e.state {
	case stateKey:
		return &e.label, nil
	case stateData:
		return e.data.Label()
	default:
		return nil, ErrEntityLabelEmpty
	}
}

// Data returns the record. It fails with ErrEntityLabelNotFetched in the
// by-key state and ErrEntityLabelEmpty when empty.
func (e *EntityLabel[K, T, L]) Data() (T, error) {
	var zero T
	switch e.state {
	case stateData:
		return e.data, nil
	case stateKey:
		return zero, ErrEntityLabelNotFetched
	default:
		return zero, ErrEntityLabelEmpty
	}
}

// IsByKeyLabel reports whether only the key and cached label are known.
func (e *EntityLabel[K, T, L]) IsByKeyLabel() bool { return e.state == stateKey }

// IsByValue reports whether the record itself is held.
func (e *EntityLabel[K, T, L]) IsByValue() bool { return e.state == stateData }

// IsEmpty reports whether nothing is set.
func (e *EntityLabel[K, T, L]) IsEmpty() bool { return e.state == stateEmpty }

// SetKeyLabel replaces the reference with the by-key state.
func (e *EntityLabel[K, T, L]) SetKeyLabel(key Key[K], label L) {
	*e = EntityLabel[K, T, L]{state: stateKey, key: key, label: label}
}

// SetData replaces the reference with the by-value state, taking ownership
// of the record.
func (e *EntityLabel[K, T, L]) SetData(record T) {
	*e = EntityLabel[K, T, L]{state: stateData, data: record}
}

// SetEmpty replaces the reference with the empty state.
func (e *EntityLabel[K, T, L]) SetEmpty() {
	*e = EntityLabel[K, T, L]{}
}

// Equal reports whether both references are in the same state with equal
// payloads. Labels and records are compared deeply.
func (e EntityLabel[K, T, L]) Equal(other EntityLabel[K, T, L]) bool {
	if e.state != other.state || e.key != other.key {
		return false
	}
	if !reflect.DeepEqual(e.label, other.label) {
		return false
	}
	if e.state == stateData {
		return reflect.DeepEqual(e.data, other.data)
	}
	return true
}

// Clone returns a copy of the reference; the by-value payload is copied into
// a fresh allocation as with Entity.Clone.
func (e EntityLabel[K, T, L]) Clone() EntityLabel[K, T, L] {
	c := e
	if e.state == stateData {
		c.data = clonePayload(e.data)
	}
	return c
}
