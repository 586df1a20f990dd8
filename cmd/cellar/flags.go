// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -catalog, -mode, -print, -format, -query, -save, -debug, -version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	config  string
	catalog string
	mode    string
	print   bool
	format  string
	query   string
	save    bool
	debug   bool
	version bool
}

// parseFlags parses args (without the program name). Usage and errors go
// to output.
func parseFlags(args []string, output io.Writer) (cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("cellar", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&a.config, "config", "", "Settings file to load instead of the global and local files")
	fs.StringVar(&a.catalog, "catalog", "", "Catalogue YAML file (default: the built-in sample)")
	fs.StringVar(&a.mode, "mode", "", "Front-end: tea or raw")
	fs.BoolVar(&a.print, "print", false, "List the catalogue and exit")
	fs.StringVar(&a.format, "format", "text", "Print mode output: text, json, or stream-json")
	fs.StringVar(&a.query, "query", "", "Print mode fuzzy name/region query")
	fs.BoolVar(&a.save, "save", false, "Write catalogue changes back to the -catalog file on exit")
	fs.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&a.version, "version", false, "Show version and exit")

	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}
	return a, nil
}
