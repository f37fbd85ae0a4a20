// Package dbentgen generates Keyed and Labeled implementations from the
// declared field layout of record structs.
//
// The generator is a build-time tool: it parses a package directory, locates
// the target struct, validates its shape, and renders the capability methods
// into a generated file. Validation failures are reported as diagnostics
// carrying the offending declaration's source position, so a misdeclared
// record fails the go:generate step instead of misbehaving at run time.
//
// Detection of the key field is syntactic: the first declared field must
// have a type literally written as dbent.Key[X] (or Key[X] inside the dbent
// package itself). A renamed or aliased wrapper type defeats detection and
// is reported as "not a dbent.Key field"; this is a documented limitation.
// The label field is marked explicitly with a `dbent:"label"` struct tag.
package dbentgen

// RecordSpec is everything extracted from a validated record declaration
// that the renderer needs.
type RecordSpec struct {
	// PackageName is the package the record is declared in; generated code
	// joins the same package.
	PackageName string
	// TypeName is the record struct's name.
	TypeName string
	// Key describes the key field when Keyed generation is requested.
	Key *KeyField
	// Label describes the label field when Labeled generation is requested.
	Label *LabelField
	// Imports lists packages referenced by the rendered field types.
	Imports []Import
}

// KeyField describes the record's key field: the first declared field,
// of type dbent.Key with exactly one type argument.
type KeyField struct {
	// FieldName is the name of the key field.
	FieldName string
	// TypeArg is the rendered type argument of the Key, e.g. "int64" or
	// "uuid.UUID".
	TypeArg string
}

// LabelField describes the record's label field: the single field carrying
// the `dbent:"label"` tag.
type LabelField struct {
	// FieldName is the name of the label field.
	FieldName string
	// TypeName is the rendered type of the label field.
	TypeName string
}

// Import is a package import required by the generated file.
type Import struct {
	// Alias is the local name when the source file imported the package
	// under one, otherwise empty.
	Alias string
	// Path is the import path.
	Path string
}
