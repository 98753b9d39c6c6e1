// ABOUTME: CLI entry point for termflow
// ABOUTME: Extracts the operation, parses flags, and dispatches with exit codes

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	// termfix must be imported before any package that imports
	// bubbletea. Its init() pre-seeds the lipgloss background color so
	// the preview never triggers OSC 10/11 terminal queries whose
	// async responses would leak into the output stream.
	_ "github.com/mauromedda/termflow/internal/termfix"

	"github.com/mauromedda/termflow/internal/suggest"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	argv := os.Args[1:]

	// The operation comes before the flags, subcommand style.
	var op string
	if len(argv) > 0 && !strings.HasPrefix(argv[0], "-") {
		op = argv[0]
		argv = argv[1:]
	}

	args, err := parseFlags(argv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	args.op = op

	if args.version {
		fmt.Printf("termflow %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if args.op == "" {
		fmt.Fprintln(os.Stderr, "termflow: missing operation")
		fmt.Fprintln(os.Stderr, "Run 'termflow -h' for usage.")
		os.Exit(2)
	}

	if !knownOp(args.op) {
		fmt.Fprintf(os.Stderr, "termflow: unknown operation %q\n", args.op)
		if best, ok := suggest.Best(args.op, opNames); ok {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", best)
		}
		os.Exit(2)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
