package dbent

import "fmt"

// Keyed is implemented by record types that declare which field holds their
// primary key. Implementations return the Key wrapper even when it is unset;
// they fail only when the receiver carries no key information at all, as the
// empty union states do.
//
// Implementations are typically generated by dbentgen from the record's
// field layout.
type Keyed[K comparable] interface {
	Key() (*Key[K], error)
}

// Labeled is implemented by record types that declare a display-label field.
type Labeled[L any] interface {
	Label() (*L, error)
}

// KeyedLabeled combines both record capabilities. Any type with a generated
// Key method and a generated Label method satisfies it structurally.
type KeyedLabeled[K comparable, L any] interface {
	Keyed[K]
	Labeled[L]
}

// Tag is the textual key/label pair of a record. It is a plain DTO with
// structural equality, suitable for API payloads and display lists.
type Tag struct {
	Key   string `json:"key" msgpack:"key"`
	Label string `json:"label" msgpack:"label"`
}

// Tagged is the derived capability of records that can produce a Tag.
// TagOf and HasTag provide it structurally for anything satisfying
// KeyedLabeled, so most types never implement Tagged by hand; the interface
// exists for call sites that want to store the capability.
type Tagged interface {
	Tag() (Tag, error)
	HasTag() bool
}

// TagOf derives the Tag of any record satisfying both capabilities. It fails
// exactly when Key or Label fails; an unset key still renders ("None"), so a
// record with key information but no value produces a Tag.
func TagOf[K comparable, L any](v KeyedLabeled[K, L]) (Tag, error) {
	key, err := v.Key()
	if err != nil {
		return Tag{}, err
	}
	label, err := v.Label()
	if err != nil {
		return Tag{}, err
	}
	return Tag{Key: key.String(), Label: fmt.Sprint(*label)}, nil
}

// HasTag reports whether the record has a usable tag: its Key accessor
// succeeds and the returned wrapper is set. This is the one accessor that
// degrades a wrong-state error into a boolean, since the question itself is
// a yes/no one.
func HasTag[K comparable](v Keyed[K]) bool {
	key, err := v.Key()
	return err == nil && key.IsSet()
}
