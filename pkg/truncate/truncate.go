// ABOUTME: Truncates ANSI-styled text to a visible width, appending a tail marker
// ABOUTME: Buffers input, then cuts at the width budget with any open style closed

package truncate

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mauromedda/termflow/pkg/ansi"
)

// DefaultTail marks the cut in output produced by String and Bytes.
const DefaultTail = "..."

// Writer shortens the text written to it to width visible columns,
// appending tail at the cut. Columns follow ansi.VisibleWidth: escape
// sequences are free, tabs advance to the next multiple of eight, a
// newline resets the column. Input that already fits passes through
// byte for byte, untruncated input keeps its styling, and a cut closes
// any open style before the tail so the tail is never styled.
//
// The cut position depends on the total visible width, so the Writer
// buffers input until Close. Always call Close before Bytes or String.
type Writer struct {
	width uint
	tail  string

	forward io.Writer // nil buffers into cache
	in      ansi.Buffer
	cache   bytes.Buffer
	closed  bool
}

// NewWriter returns a buffering Writer; retrieve the result with Bytes
// or String after Close.
func NewWriter(width uint, tail string) *Writer {
	return &Writer{width: width, tail: tail}
}

// NewWriterPipe returns a Writer that sends the truncated result to
// forward when Close runs.
func NewWriterPipe(forward io.Writer, width uint, tail string) *Writer {
	return &Writer{width: width, tail: tail, forward: forward}
}

// Write buffers b for truncation at Close. b must be valid UTF-8;
// otherwise nothing is buffered and the error wraps ansi.ErrInvalidUTF8.
func (w *Writer) Write(b []byte) (int, error) {
	if !utf8.Valid(b) {
		return 0, fmt.Errorf("truncate: %w", ansi.ErrInvalidUTF8)
	}
	return w.in.Write(b)
}

// Close truncates the buffered input and emits the result. Subsequent
// Close calls are no-ops.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	dest := w.forward
	if dest == nil {
		dest = &w.cache
	}

	// Every write was validated on the way in, so the unchecked view is
	// safe here.
	s := w.in.UncheckedString()

	tw := ansi.VisibleWidth(w.tail)
	if int(w.width) < tw {
		// The budget cannot even hold the tail; the input is discarded
		// entirely.
		_, err := io.WriteString(dest, w.tail)
		return err
	}
	if ansi.VisibleWidth(s) <= int(w.width) {
		_, err := io.WriteString(dest, s)
		return err
	}

	budget := int(w.width) - tw
	aw := ansi.NewWriter(dest)
	col := 0
	inEscape := false

walk:
	for _, c := range s {
		switch {
		case c == ansi.Marker:
			inEscape = true
		case inEscape:
			if ansi.IsTerminator(c) {
				inEscape = false
			}
		default:
			next := ansi.AdvanceColumn(col, c)
			if next > budget {
				break walk
			}
			col = next
		}

		if _, err := aw.WriteString(string(c)); err != nil {
			return err
		}
	}

	if err := aw.ResetAnsi(); err != nil {
		return err
	}
	_, err := io.WriteString(dest, w.tail)
	return err
}

// Bytes returns the truncated result. Close must run first.
func (w *Writer) Bytes() []byte {
	return w.cache.Bytes()
}

// String returns the truncated result. Close must run first.
func (w *Writer) String() string {
	return w.cache.String()
}

// Bytes shortens b to width visible columns, marking a cut with
// DefaultTail.
func Bytes(b []byte, width uint) []byte {
	return BytesWithTail(b, width, DefaultTail)
}

// BytesWithTail shortens b to width visible columns, marking a cut
// with tail.
func BytesWithTail(b []byte, width uint, tail string) []byte {
	f := NewWriter(width, tail)
	_, _ = f.Write(b)
	_ = f.Close()
	return f.Bytes()
}

// String shortens s to width visible columns, marking a cut with
// DefaultTail.
func String(s string, width uint) string {
	return StringWithTail(s, width, DefaultTail)
}

// StringWithTail shortens s to width visible columns, marking a cut
// with tail.
func StringWithTail(s string, width uint, tail string) string {
	return string(BytesWithTail([]byte(s), width, tail))
}
