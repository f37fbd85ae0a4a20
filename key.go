package dbent

import "fmt"

// Key holds an optional primary-key value for a record type.
//
// The zero value is unset. Unset is a first-class state, distinct from a
// present zero value of K: Key[int64]{} is not equal to NewKey(int64(0)).
// Because K is comparable, Key values compare with == and are usable as
// map keys.
type Key[K comparable] struct {
	value K
	set   bool
}

// NewKey returns a Key holding the given value.
func NewKey[K comparable](value K) Key[K] {
	return Key[K]{value: value, set: true}
}

// KeyFromPtr returns a Key cloned from an optional value: nil maps to the
// unset state, anything else to a Key holding a copy of *p.
func KeyFromPtr[K comparable](p *K) Key[K] {
	if p == nil {
		return Key[K]{}
	}
	return Key[K]{value: *p, set: true}
}

// Get returns the underlying value and whether it is set.
func (k Key[K]) Get() (K, bool) {
	return k.value, k.set
}

// IsSet reports whether the Key holds a value.
func (k Key[K]) IsSet() bool {
	return k.set
}

// Ptr returns a pointer to a copy of the underlying value, or nil when the
// Key is unset. The pointee is a copy; writing through it does not change
// the Key.
func (k Key[K]) Ptr() *K {
	if !k.set {
		return nil
	}
	v := k.value
	return &v
}

// Set replaces the underlying value and marks the Key as set.
func (k *Key[K]) Set(value K) {
	k.value = value
	k.set = true
}

// Clear resets the Key to the unset state.
func (k *Key[K]) Clear() {
	var zero K
	k.value = zero
	k.set = false
}

// String renders the underlying value, or exactly "None" when unset.
// A set value renders through fmt, so key types implementing fmt.Stringer
// keep their own textual form.
func (k Key[K]) String() string {
	if !k.set {
		return "None"
	}
	return fmt.Sprint(k.value)
}
