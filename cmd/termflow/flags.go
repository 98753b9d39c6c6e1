// ABOUTME: CLI flag parsing using stdlib flag with subcommand-style operations
// ABOUTME: Supports -w, -tail, -indent, -tabs, -keep-newlines, -json, -interactive, -verbose, -version

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	op    string
	files []string

	width        int
	widthSet     bool
	tail         string
	tailSet      bool
	indentCount  uint
	indentSet    bool
	tabs         bool
	keepNewlines bool
	jsonOut      bool
	interactive  bool
	theme        string
	verbose      bool
	version      bool
}

const usageText = `Usage: termflow <operation> [flags] [file ...]

Operations:
  pad        fill every line with spaces up to the width
  truncate   cut the input down to the width, appending a tail
  indent     shift every line right by the indent size
  dedent     remove the common leading whitespace
  wordwrap   wrap at word boundaries within the width
  wrap       wrap unconditionally at the width
  margin     surround lines with a left margin plus right padding
  strip      remove all escape sequences
  width      measure the input instead of transforming it

Input comes from the file arguments, or stdin when none are given.
Escape sequences pass through every transform untouched.

Flags:
`

// parseFlags parses everything after the operation name. errOut
// receives usage and flag errors.
func parseFlags(argv []string, errOut io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("termflow", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprint(errOut, usageText)
		fs.PrintDefaults()
	}

	fs.IntVar(&args.width, "w", 0, "Target width; 0 autodetects the terminal")
	fs.IntVar(&args.width, "width", 0, "Target width; 0 autodetects the terminal")
	fs.StringVar(&args.tail, "tail", "", `Truncation tail (default "...")`)
	fs.UintVar(&args.indentCount, "indent", 4, "Indent and margin size")
	fs.BoolVar(&args.tabs, "tabs", false, "Indent with tabs instead of spaces")
	fs.BoolVar(&args.keepNewlines, "keep-newlines", true, "Keep input newlines when wrapping")
	fs.BoolVar(&args.jsonOut, "json", false, "Emit width measurements as JSON")
	fs.BoolVar(&args.interactive, "interactive", false, "Preview the operation interactively")
	fs.StringVar(&args.theme, "theme", "", "Theme for the interactive sample document")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w", "width":
			args.widthSet = true
		case "tail":
			args.tailSet = true
		case "indent":
			args.indentSet = true
		}
	})

	args.files = fs.Args()
	return args, nil
}
