package dbentgen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// Target is a located record declaration, ready for validation.
type Target struct {
	Fset        *token.FileSet
	PackageName string
	TypeName    string
	File        *ast.File
	Struct      *ast.StructType
	Pos         token.Pos
}

// LoadTarget parses the non-test Go files in dir and locates the declaration
// of the named type. The declaration must be a struct type; anything else is
// a ShapeError at the declaration's position.
func LoadTarget(dir, typeName string) (*Target, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			// surface syntax errors as positioned diagnostics; a malformed
			// declaration (dbent.Key[3], say) never parses in the first place
			var list scanner.ErrorList
			if errors.As(err, &list) && len(list) > 0 {
				return nil, &ShapeError{Pos: list[0].Pos, Msg: list[0].Msg}
			}
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		target, err := findType(fset, file, typeName)
		if err != nil {
			return nil, err
		}
		if target != nil {
			return target, nil
		}
	}
	return nil, &NotFoundError{TypeName: typeName, Dir: dir}
}

func findType(fset *token.FileSet, file *ast.File, typeName string) (*Target, error) {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != typeName {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, &ShapeError{
					Pos: fset.Position(ts.Pos()),
					Msg: fmt.Sprintf("%s is not a struct type; only structs with named fields are supported", typeName),
				}
			}
			if ts.TypeParams != nil {
				return nil, &ShapeError{
					Pos: fset.Position(ts.Pos()),
					Msg: fmt.Sprintf("%s is generic; generic record types are not supported", typeName),
				}
			}
			return &Target{
				Fset:        fset,
				PackageName: file.Name.Name,
				TypeName:    typeName,
				File:        file,
				Struct:      st,
				Pos:         ts.Pos(),
			}, nil
		}
	}
	return nil, nil
}

// InspectKeyed validates the key-field layout and extracts the KeyField: the
// struct's first declared field must be named and of type dbent.Key with
// exactly one type argument.
func (t *Target) InspectKeyed() (*KeyField, error) {
	fields := t.Struct.Fields
	if fields == nil || len(fields.List) == 0 {
		return nil, t.shapeErr(t.Pos, "%s needs at least one field, with a dbent.Key field declared first", t.TypeName)
	}

	first := fields.List[0]
	if len(first.Names) == 0 {
		return nil, t.shapeErr(first.Pos(), "the first field of %s must be a named dbent.Key field, not an embedded type", t.TypeName)
	}

	idx, ok := first.Type.(*ast.IndexExpr)
	if !ok {
		if _, multi := first.Type.(*ast.IndexListExpr); multi {
			return nil, t.shapeErr(first.Type.Pos(), "dbent.Key takes exactly one type argument")
		}
		if isKeyName(first.Type) {
			return nil, t.shapeErr(first.Type.Pos(), "dbent.Key needs a type argument, e.g. dbent.Key[int64]")
		}
		return nil, t.shapeErr(first.Type.Pos(), "the first field of %s is not a dbent.Key field; an aliased or renamed Key type is not detected", t.TypeName)
	}
	if !isKeyName(idx.X) {
		return nil, t.shapeErr(idx.X.Pos(), "the first field of %s is not a dbent.Key field; an aliased or renamed Key type is not detected", t.TypeName)
	}

	return &KeyField{
		FieldName: first.Names[0].Name,
		TypeArg:   types.ExprString(idx.Index),
	}, nil
}

// InspectLabeled validates the label-marker layout and extracts the
// LabelField: exactly one named field must carry the `dbent:"label"` tag.
func (t *Target) InspectLabeled() (*LabelField, error) {
	fields := t.Struct.Fields
	if fields == nil || len(fields.List) == 0 {
		return nil, t.shapeErr(t.Pos, "%s needs exactly one field tagged `dbent:\"label\"`, found 0", t.TypeName)
	}

	var found []*LabelField
	for _, field := range fields.List {
		if !hasLabelTag(field) {
			continue
		}
		if len(field.Names) == 0 {
			return nil, t.shapeErr(field.Pos(), "an embedded field of %s cannot be the label field", t.TypeName)
		}
		for _, name := range field.Names {
			found = append(found, &LabelField{
				FieldName: name.Name,
				TypeName:  types.ExprString(field.Type),
			})
		}
	}
	if len(found) != 1 {
		return nil, t.shapeErr(t.Pos, "%s needs exactly one field tagged `dbent:\"label\"`, found %d", t.TypeName, len(found))
	}
	return found[0], nil
}

// TypeImports resolves the package qualifiers referenced by the extracted
// field types against the source file's imports, so the generated file can
// repeat them.
func (t *Target) TypeImports(spec *RecordSpec) []Import {
	quals := make(map[string]bool)
	if spec.Key != nil {
		collectQualifiers(quals, spec.Key.TypeArg)
	}
	if spec.Label != nil {
		collectQualifiers(quals, spec.Label.TypeName)
	}
	if len(quals) == 0 {
		return nil
	}

	var imports []Import
	for _, imp := range t.File.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		local := filepath.Base(path)
		alias := ""
		if imp.Name != nil {
			local = imp.Name.Name
			alias = imp.Name.Name
		}
		if quals[local] {
			imports = append(imports, Import{Alias: alias, Path: path})
		}
	}
	return imports
}

// collectQualifiers scans a rendered type expression for "pkg.Name"
// qualifiers.
func collectQualifiers(quals map[string]bool, typeExpr string) {
	expr, err := parser.ParseExpr(typeExpr)
	if err != nil {
		return
	}
	ast.Inspect(expr, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if ident, ok := sel.X.(*ast.Ident); ok {
				quals[ident.Name] = true
				return false
			}
		}
		return true
	})
}

// isKeyName reports whether a type expression is literally the Key wrapper:
// the Key identifier itself, or a selector whose final name is Key.
func isKeyName(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name == "Key"
	case *ast.SelectorExpr:
		return e.Sel.Name == "Key"
	default:
		return false
	}
}

// hasLabelTag reports whether the field's dbent struct tag carries the
// "label" option.
func hasLabelTag(field *ast.Field) bool {
	if field.Tag == nil {
		return false
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return false
	}
	tag := reflect.StructTag(raw).Get("dbent")
	for _, opt := range strings.Split(tag, ",") {
		if strings.TrimSpace(opt) == "label" {
			return true
		}
	}
	return false
}

func (t *Target) shapeErr(pos token.Pos, format string, args ...any) *ShapeError {
	return &ShapeError{
		Pos: t.Fset.Position(pos),
		Msg: fmt.Sprintf(format, args...),
	}
}
