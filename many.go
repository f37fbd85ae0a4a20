package dbent

import (
	"reflect"
	"slices"
)

type manyState uint8

const (
	manyEmpty manyState = iota
	manyNotFetched
	manyLoaded
)

// Many is a reference to the records of a one-to-many or many-to-many
// relation, in exactly one of three states: loaded (the sequence was fetched
// or created), not fetched (the relation exists in the schema but was not
// queried), or empty (queried or intentionally vacant, no relation
// asserted). The zero value is empty.
type Many[T any] struct {
	state manyState
	items []T
}

// ManyOf returns a Many in the loaded state, taking ownership of the slice.
func ManyOf[T any](items []T) Many[T] {
	return Many[T]{state: manyLoaded, items: items}
}

// NotFetchedMany returns a Many marking records that exist but were not
// queried.
func NotFetchedMany[T any]() Many[T] {
	return Many[T]{state: manyNotFetched}
}

// Data returns the loaded records. It fails with ErrManyNotFetched in the
// not-fetched state and ErrManyEmpty when empty. The slice is the Many's own
// backing store, not a copy.
func (m *Many[T]) Data() ([]T, error) {
	switch m.state {
	case manyLoaded:
		return m.items, nil
	case manyNotFetched:
		return nil, ErrManyNotFetched
	default:
		return nil, ErrManyEmpty
	}
}

// DataMut returns a pointer to the loaded slice so callers can grow or
// replace it in place. The error cases match Data.
func (m *Many[T]) DataMut() (*[]T, error) {
	switch m.state {
	case manyLoaded:
		return &m.items, nil
	case manyNotFetched:
		return nil, ErrManyNotFetched
	default:
		return nil, ErrManyEmpty
	}
}

// IsLoaded reports whether the records are held.
func (m *Many[T]) IsLoaded() bool { return m.state == manyLoaded }

// IsNotFetched reports whether the records exist but were not queried.
func (m *Many[T]) IsNotFetched() bool { return m.state == manyNotFetched }

// IsEmpty reports whether no records are set or expected.
func (m *Many[T]) IsEmpty() bool { return m.state == manyEmpty }

// SetData replaces the reference with the loaded state, taking ownership of
// the slice.
func (m *Many[T]) SetData(items []T) {
	*m = Many[T]{state: manyLoaded, items: items}
}

// SetNotFetched replaces the reference with the not-fetched state.
func (m *Many[T]) SetNotFetched() {
	*m = Many[T]{state: manyNotFetched}
}

// SetEmpty replaces the reference with the empty state.
func (m *Many[T]) SetEmpty() {
	*m = Many[T]{}
}

// Equal reports whether both references are in the same state with deeply
// equal sequences.
func (m Many[T]) Equal(other Many[T]) bool {
	if m.state != other.state {
		return false
	}
	if m.state != manyLoaded {
		return true
	}
	if len(m.items) != len(other.items) {
		return false
	}
	for i := range m.items {
		if !reflect.DeepEqual(m.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the reference with its own backing slice. Element
// copies are shallow.
func (m Many[T]) Clone() Many[T] {
	c := m
	c.items = slices.Clone(m.items)
	return c
}
