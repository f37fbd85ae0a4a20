package dbentgen

// Config specifies one generation run.
type Config struct {
	// Dir is the package directory to scan.
	Dir string
	// TypeName is the record struct to generate for.
	TypeName string
	// Keyed requests generation of the Key method.
	Keyed bool
	// Labeled requests generation of the Label method.
	Labeled bool
	// DbentImport is the import path of the dbent package in generated code.
	DbentImport string
}

// DefaultConfig returns a standard Config: Keyed generation for a type in
// the current directory.
func DefaultConfig() Config {
	return Config{
		Dir:         ".",
		Keyed:       true,
		DbentImport: "github.com/CaliLuke/go-dbent",
	}
}

// Generate runs the full pipeline for one record type: load the
// declaration, validate the requested shapes, and render the capability
// methods. It is a pure function of the source on disk; validation failures
// come back as *ShapeError diagnostics with source positions.
func Generate(cfg Config) ([]byte, error) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.DbentImport == "" {
		cfg.DbentImport = "github.com/CaliLuke/go-dbent"
	}

	target, err := LoadTarget(cfg.Dir, cfg.TypeName)
	if err != nil {
		return nil, err
	}

	spec := &RecordSpec{
		PackageName: target.PackageName,
		TypeName:    target.TypeName,
	}
	if cfg.Keyed {
		spec.Key, err = target.InspectKeyed()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Labeled {
		spec.Label, err = target.InspectLabeled()
		if err != nil {
			return nil, err
		}
	}
	spec.Imports = target.TypeImports(spec)

	return Render(spec, cfg.DbentImport)
}
