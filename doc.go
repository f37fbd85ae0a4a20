// Package dbent provides reference types for database entities.
//
// When a row is mapped onto a Go struct, a related record can be in one of
// several states: only its key is known, the full record was joined in, or
// the column was NULL. The same goes for one-to-many relations, which may be
// loaded, known to exist but not queried, or intentionally vacant. Package
// dbent models each of those situations as an explicit state instead of a
// nil pointer plus a boolean:
//
//   - [Key] is an optional primary-key value, where "unset" is distinct from
//     the zero value of the key type
//   - [Entity] is a reference to one record: by key, by value, or empty
//   - [EntityLabel] is like Entity, but the by-key state also caches a display
//     label so rendering a name does not require a join
//   - [Many] is a reference to a list of records: loaded, not fetched, or empty
//
// Record types declare their key and label through the [Keyed] and [Labeled]
// interfaces. Implementations are usually generated by the dbentgen tool
// (see [github.com/CaliLuke/go-dbent/dbentgen]), driven by the struct's
// declared field layout:
//
//	//go:generate dbentgen -type Person -labeled -out person_dbent.go
//	type Person struct {
//		ID   dbent.Key[int64]
//		Name string `dbent:"label"`
//	}
//
// Every accessor that can observe a wrong state returns one of the sentinel
// errors in this package rather than panicking; callers match them with
// errors.Is and decide whether to recover or propagate.
package dbent
