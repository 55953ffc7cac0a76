package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	input   string
	meta    string
	outDir  string
	preview bool
	verbose bool
}

// parseFlags parses args (excluding the program name).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("postkit", flag.ContinueOnError)

	f := &cliFlags{}
	fs.StringVarP(&f.input, "input", "i", "", "markdown input file (may carry front matter)")
	fs.StringVarP(&f.meta, "meta", "m", "", "YAML metadata file overriding the input's front matter")
	fs.StringVarP(&f.outDir, "out", "o", ".", "output directory")
	fs.BoolVar(&f.preview, "preview", false, "also write the sanitized preview HTML")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.input == "" {
		return nil, fmt.Errorf("--input is required")
	}
	return f, nil
}
