// ABOUTME: Operation dispatch and input handling for the termflow CLI
// ABOUTME: Resolves flags against config, runs transforms, and fans out over files

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/termflow/internal/config"
	"github.com/mauromedda/termflow/internal/log"
	"github.com/mauromedda/termflow/internal/preview"
	"github.com/mauromedda/termflow/internal/report"
	"github.com/mauromedda/termflow/pkg/ansi"
	"github.com/mauromedda/termflow/pkg/dedent"
	"github.com/mauromedda/termflow/pkg/indent"
	"github.com/mauromedda/termflow/pkg/margin"
	"github.com/mauromedda/termflow/pkg/padding"
	"github.com/mauromedda/termflow/pkg/truncate"
	"github.com/mauromedda/termflow/pkg/wordwrap"
	"github.com/mauromedda/termflow/pkg/wrap"
)

const defaultWidth = 80

var opNames = []string{"pad", "truncate", "indent", "dedent", "wordwrap", "wrap", "margin", "strip", "width"}

func knownOp(op string) bool {
	return slices.Contains(opNames, op)
}

// opts holds fully resolved transform parameters: flags override
// config, config overrides the built-in defaults.
type opts struct {
	width        uint
	tail         string
	indent       uint
	tabs         bool
	keepNewlines bool
}

func resolveOpts(args cliArgs, cfg *config.Config) (opts, error) {
	o := opts{
		tail:         truncate.DefaultTail,
		indent:       args.indentCount,
		tabs:         args.tabs,
		keepNewlines: args.keepNewlines,
	}

	width := args.width
	if !args.widthSet && cfg.Width != 0 {
		width = cfg.Width
	}
	if width < 0 {
		return o, fmt.Errorf("width must be >= 0, got %d", width)
	}
	if width == 0 {
		width = detectWidth()
	}
	o.width = uint(width)

	switch {
	case args.tailSet:
		o.tail = args.tail
	case cfg.Tail != "":
		o.tail = cfg.Tail
	}

	if !args.indentSet && cfg.Indent.Count > 0 {
		o.indent = cfg.Indent.Count
		if !args.tabs && cfg.Indent.Style == indent.Tabs {
			o.tabs = true
		}
	}

	return o, nil
}

// detectWidth reads the terminal size from stdout, falling back to 80
// when stdout is not a terminal.
func detectWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func run(args cliArgs) error {
	if args.verbose {
		log.SetVerbose(true)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	o, err := resolveOpts(args, cfg)
	if err != nil {
		return err
	}
	log.Debug("op=%s width=%d tail=%q files=%d", args.op, o.width, o.tail, len(args.files))

	if args.interactive {
		return runPreview(args, o, cfg)
	}

	if len(args.files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		out, err := process(args.op, "stdin", string(data), o, args, false)
		if err != nil {
			return err
		}
		_, err = io.WriteString(os.Stdout, out)
		return err
	}

	// Every file gets its own writer chain; the slots keep the output
	// in argument order no matter which worker finishes first.
	results := make([]string, len(args.files))
	multi := len(args.files) > 1

	var g errgroup.Group
	for i, path := range args.files {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			out, err := process(args.op, path, string(data), o, args, multi)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if _, err := io.WriteString(os.Stdout, out); err != nil {
			return err
		}
	}
	return nil
}

// process runs one input through the operation. The width operation
// measures instead of transforming; everything else goes through apply.
func process(op, source, s string, o opts, args cliArgs, multi bool) (string, error) {
	if op == "width" {
		m := report.Measure(source, s)
		if args.jsonOut {
			var buf bytes.Buffer
			if err := report.Write(&buf, m); err != nil {
				return "", err
			}
			return buf.String(), nil
		}
		if multi {
			return fmt.Sprintf("%s: %d\n", source, m.VisibleWidth), nil
		}
		return fmt.Sprintf("%d\n", m.VisibleWidth), nil
	}
	return apply(op, s, o)
}

// apply dispatches to the transform packages.
func apply(op, s string, o opts) (string, error) {
	switch op {
	case "pad":
		w := padding.NewWriter(o.width, nil)
		if _, err := io.WriteString(w, s); err != nil {
			return "", err
		}
		if err := w.Close(); err != nil {
			return "", err
		}
		return w.String(), nil

	case "truncate":
		w := truncate.NewWriter(o.width, o.tail)
		if _, err := io.WriteString(w, s); err != nil {
			return "", err
		}
		if err := w.Close(); err != nil {
			return "", err
		}
		return w.String(), nil

	case "indent":
		w := indent.NewWriter(o.indent, indentFunc(o))
		if _, err := io.WriteString(w, s); err != nil {
			return "", err
		}
		return w.String(), nil

	case "dedent":
		return dedent.String(s), nil

	case "wordwrap":
		w := wordwrap.NewWriter(int(o.width))
		w.KeepNewlines = o.keepNewlines
		if _, err := io.WriteString(w, s); err != nil {
			return "", err
		}
		if err := w.Close(); err != nil {
			return "", err
		}
		return w.String(), nil

	case "wrap":
		w := wrap.NewWriter(int(o.width))
		w.KeepNewlines = o.keepNewlines
		if _, err := io.WriteString(w, s); err != nil {
			return "", err
		}
		return w.String(), nil

	case "margin":
		w := margin.NewWriter(o.width, o.indent, nil)
		if _, err := io.WriteString(w, s); err != nil {
			return "", err
		}
		if err := w.Close(); err != nil {
			return "", err
		}
		return w.String(), nil

	case "strip":
		return ansi.Strip(s), nil
	}
	return "", fmt.Errorf("unknown operation %q", op)
}

// indentFunc returns the per-unit indent writer, or nil for the space
// default.
func indentFunc(o opts) indent.IndentFunc {
	if !o.tabs {
		return nil
	}
	return func(w io.Writer) {
		io.WriteString(w, "\t")
	}
}

func runPreview(args cliArgs, o opts, cfg *config.Config) error {
	input, err := previewInput(args, cfg)
	if err != nil {
		return err
	}
	start := args.op
	if start == "width" {
		start = "pad"
	}
	return preview.Run(previewOps(o), start, input, int(o.width))
}

// previewInput reads stdin when it is piped; on a terminal the
// embedded styled sample stands in.
func previewInput(args cliArgs, cfg *config.Config) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		theme := args.theme
		if theme == "" {
			theme = cfg.Theme
		}
		return preview.SampleText(theme), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// previewOps exposes every transform to the preview. width is a
// measurement, not a transform, so it has no live pane.
func previewOps(o opts) []preview.Op {
	ops := make([]preview.Op, 0, len(opNames))
	for _, name := range opNames {
		if name == "width" {
			continue
		}
		ops = append(ops, preview.Op{
			Name: name,
			Apply: func(s string, width int) (string, error) {
				po := o
				if width > 0 {
					po.width = uint(width)
				}
				return apply(name, s, po)
			},
		})
	}
	return ops
}
