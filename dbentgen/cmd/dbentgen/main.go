// dbentgen generates Keyed and Labeled implementations for record structs.
//
// Usage:
//
//	dbentgen -type Person [-dir .] [-out person_dbent.go] [-labeled] [-keyed=false]
//
// It is meant to be driven by go:generate next to the record declaration:
//
//	//go:generate dbentgen -type Person -labeled -out person_dbent.go
//
// A record that fails shape validation is reported with its source position
// on stderr and a non-zero exit, failing the generate step.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/CaliLuke/go-dbent/dbentgen"
)

const version = "0.1.0"

func main() {
	typeName := flag.String("type", "", "Record struct to generate for (required)")
	dir := flag.String("dir", ".", "Package directory to scan")
	outFile := flag.String("out", "", "Output Go file (default: stdout)")
	keyed := flag.Bool("keyed", true, "Generate the Key method from the first dbent.Key field")
	labeled := flag.Bool("labeled", false, "Generate the Label method from the `dbent:\"label\"` tag")
	dbentImport := flag.String("import", "github.com/CaliLuke/go-dbent", "Import path of the dbent package in generated code")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("dbentgen %s\n", version)
		os.Exit(0)
	}

	if *typeName == "" {
		fmt.Fprintln(os.Stderr, "error: -type flag is required")
		flag.Usage()
		os.Exit(1)
	}
	if !*keyed && !*labeled {
		fmt.Fprintln(os.Stderr, "error: nothing to generate; enable -keyed and/or -labeled")
		os.Exit(1)
	}

	src, err := dbentgen.Generate(dbentgen.Config{
		Dir:         *dir,
		TypeName:    *typeName,
		Keyed:       *keyed,
		Labeled:     *labeled,
		DbentImport: *dbentImport,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *outFile == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := os.WriteFile(*outFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
		os.Exit(1)
	}
}
