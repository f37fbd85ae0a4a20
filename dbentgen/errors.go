package dbentgen

import (
	"fmt"
	"go/token"
)

// ShapeError is a build-time diagnostic: the source does not parse, or the
// record declaration does not have the layout the requested generation
// needs. Pos points at the offending declaration, field, or token.
type ShapeError struct {
	Pos token.Position
	Msg string
}

// Error returns the diagnostic in file:line:col form, the way compilers
// report it.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// NotFoundError is returned when the target type is not declared in the
// scanned directory.
type NotFoundError struct {
	TypeName string
	Dir      string
}

// Error returns the error message for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("type %q not found in %s", e.TypeName, e.Dir)
}
