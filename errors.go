package dbent

import "errors"

// The accessors on Entity, EntityLabel and Many return exactly one of these
// sentinels when the value is not in a state that can satisfy the query.
// Match them with errors.Is; they are never wrapped by this package.
var (
	// ErrEntityEmpty is returned when an Entity holds neither a key nor data.
	ErrEntityEmpty = errors.New("dbent: nothing set for this Entity")
	// ErrEntityNotFetched is returned when an Entity holds only a key and the
	// record itself was not fetched.
	ErrEntityNotFetched = errors.New("dbent: data was not fetched for this Entity")
	// ErrEntityLabelEmpty is returned when an EntityLabel holds neither a
	// key/label pair nor data.
	ErrEntityLabelEmpty = errors.New("dbent: nothing set for this EntityLabel")
	// ErrEntityLabelNotFetched is returned when an EntityLabel holds only a
	// key/label pair and the record itself was not fetched.
	ErrEntityLabelNotFetched = errors.New("dbent: data was not fetched for this EntityLabel")
	// ErrManyEmpty is returned when a Many holds no data and none was expected.
	ErrManyEmpty = errors.New("dbent: no data set for this Many")
	// ErrManyNotFetched is returned when a Many's records exist but were not
	// fetched.
	ErrManyNotFetched = errors.New("dbent: data was not fetched for this Many")
)
