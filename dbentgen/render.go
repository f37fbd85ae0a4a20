package dbentgen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// Render produces the generated Go source for a validated RecordSpec. The
// output is gofmt-formatted and carries the standard generated-code header.
func Render(spec *RecordSpec, dbentImport string) ([]byte, error) {
	qual := "dbent."
	if spec.PackageName == "dbent" {
		qual = ""
	}
	// only the Key signature references the dbent package; Label signatures
	// use the field's own type
	imports := spec.Imports
	if spec.Key != nil && spec.PackageName != "dbent" {
		imports = append([]Import{{Path: dbentImport}}, imports...)
	}

	data := &renderData{
		PackageName: spec.PackageName,
		TypeName:    spec.TypeName,
		Qual:        qual,
		Imports:     imports,
		Key:         spec.Key,
		Label:       spec.Label,
	}

	var buf bytes.Buffer
	if err := renderTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

type renderData struct {
	PackageName string
	TypeName    string
	Qual        string
	Imports     []Import
	Key         *KeyField
	Label       *LabelField
}

var renderTemplate = template.Must(template.New("dbent").Parse(`// Code generated by dbentgen. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{- if .Key}}
// Key returns the primary-key wrapper for {{.TypeName}}.
func (x *{{.TypeName}}) Key() (*{{.Qual}}Key[{{.Key.TypeArg}}], error) {
	return &x.{{.Key.FieldName}}, nil
}
{{end}}
{{- if .Label}}
// Label returns the display label for {{.TypeName}}.
func (x *{{.TypeName}}) Label() (*{{.Label.TypeName}}, error) {
	return &x.{{.Label.FieldName}}, nil
}
{{end}}`))
