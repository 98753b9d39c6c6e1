// ABOUTME: Indents every line of ANSI-styled text by a fixed number of characters
// ABOUTME: Indentation is written unstyled, with open styles reset and restored around it

package indent

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mauromedda/termflow/pkg/ansi"
)

// IndentFunc writes a single indent character. When nil, lines are
// indented with spaces.
type IndentFunc func(w io.Writer)

// Writer indents every line written to it by Indent characters. The
// indent lands before the first rune of each line; any open style is
// reset first and restored right after, so the indent itself is never
// styled while the line keeps its styling.
type Writer struct {
	Indent     uint
	IndentFunc IndentFunc

	ansiWriter *ansi.Writer
	buf        bytes.Buffer
	skipIndent bool
	inEscape   bool
}

// NewWriter returns a buffering Writer; retrieve the result with Bytes
// or String.
func NewWriter(indent uint, indentFunc IndentFunc) *Writer {
	w := &Writer{
		Indent:     indent,
		IndentFunc: indentFunc,
	}
	w.ansiWriter = &ansi.Writer{Forward: &w.buf}
	return w
}

// NewWriterPipe returns a Writer that forwards indented output to
// forward instead of buffering it.
func NewWriterPipe(forward io.Writer, indent uint, indentFunc IndentFunc) *Writer {
	return &Writer{
		Indent:     indent,
		IndentFunc: indentFunc,
		ansiWriter: &ansi.Writer{Forward: forward},
	}
}

// Bytes returns the indented result.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the indented result.
func (w *Writer) String() string {
	return w.buf.String()
}

// Write indents b line by line. b must be valid UTF-8; otherwise
// nothing is written and the error wraps ansi.ErrInvalidUTF8. Escape
// sequences arriving before a line's first rune pass through ahead of
// the indent.
func (w *Writer) Write(b []byte) (int, error) {
	if !utf8.Valid(b) {
		return 0, fmt.Errorf("indent: %w", ansi.ErrInvalidUTF8)
	}

	for _, c := range string(b) {
		switch {
		case c == ansi.Marker:
			w.inEscape = true
		case w.inEscape:
			if ansi.IsTerminator(c) {
				w.inEscape = false
			}
		default:
			if !w.skipIndent {
				if err := w.writeIndent(); err != nil {
					return 0, err
				}
			}
			if c == '\n' {
				w.skipIndent = false
			}
		}

		if _, err := w.ansiWriter.WriteString(string(c)); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

func (w *Writer) writeIndent() error {
	if err := w.ansiWriter.ResetAnsi(); err != nil {
		return err
	}
	if w.IndentFunc != nil {
		for i := 0; i < int(w.Indent); i++ {
			w.IndentFunc(w.ansiWriter)
		}
	} else {
		if _, err := w.ansiWriter.WriteString(strings.Repeat(" ", int(w.Indent))); err != nil {
			return err
		}
	}
	w.skipIndent = true
	return w.ansiWriter.RestoreAnsi()
}

// Bytes indents every line of b by indent spaces.
func Bytes(b []byte, indent uint) []byte {
	f := NewWriter(indent, nil)
	_, _ = f.Write(b)
	return f.Bytes()
}

// String indents every line of s by indent spaces.
func String(s string, indent uint) string {
	return string(Bytes([]byte(s), indent))
}
