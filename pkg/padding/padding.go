// ABOUTME: Pads every line of ANSI-styled text to a fixed visible width
// ABOUTME: Padding lands outside the line's styling; columns follow the tab-aware scanner

package padding

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mauromedda/termflow/pkg/ansi"
)

// PaddingFunc writes a single fill character. When nil, lines are
// padded with spaces.
type PaddingFunc func(w io.Writer)

// Writer pads every line of the text written to it to Padding visible
// columns. Columns are measured the way ansi.VisibleWidth measures
// them: escape sequences are free, a tab advances to the next multiple
// of eight, and every other rune costs its UTF-8 encoded length. The
// pad characters are emitted before the newline and after an SGR reset,
// so trailing fill is never styled.
type Writer struct {
	Padding uint
	PadFunc PaddingFunc

	ansiWriter *ansi.Writer
	buf        bytes.Buffer
	cache      bytes.Buffer
	lineWidth  int
	inEscape   bool
}

// NewWriter returns a buffering Writer; retrieve the result with Bytes
// or String after Close.
func NewWriter(width uint, padFunc PaddingFunc) *Writer {
	w := &Writer{
		Padding: width,
		PadFunc: padFunc,
	}
	w.ansiWriter = &ansi.Writer{Forward: &w.buf}
	return w
}

// NewWriterPipe returns a Writer that forwards padded output to
// forward instead of buffering it.
func NewWriterPipe(forward io.Writer, width uint, padFunc PaddingFunc) *Writer {
	return &Writer{
		Padding:    width,
		PadFunc:    padFunc,
		ansiWriter: &ansi.Writer{Forward: forward},
	}
}

// Bytes returns the padded result. Close must run first.
func (w *Writer) Bytes() []byte {
	return w.cache.Bytes()
}

// String returns the padded result. Close must run first.
func (w *Writer) String() string {
	return w.cache.String()
}

// Write pads b line by line. b must be valid UTF-8; otherwise nothing
// is written and the error wraps ansi.ErrInvalidUTF8. Escape sequences
// pass through without affecting the column count. On every newline the
// current line is padded, any open style is reset, and only then is the
// newline forwarded, so the next line starts unstyled at column zero.
func (w *Writer) Write(b []byte) (int, error) {
	if !utf8.Valid(b) {
		return 0, fmt.Errorf("pad: %w", ansi.ErrInvalidUTF8)
	}

	for _, c := range string(b) {
		switch {
		case c == ansi.Marker:
			w.inEscape = true
		case w.inEscape:
			if ansi.IsTerminator(c) {
				w.inEscape = false
			}
		case c == '\n':
			if err := w.pad(); err != nil {
				return 0, err
			}
			if err := w.ansiWriter.ResetAnsi(); err != nil {
				return 0, err
			}
			w.lineWidth = 0
		default:
			w.lineWidth = ansi.AdvanceColumn(w.lineWidth, c)
		}

		if _, err := w.ansiWriter.WriteString(string(c)); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

func (w *Writer) pad() error {
	if w.Padding == 0 || w.lineWidth >= int(w.Padding) {
		return nil
	}
	n := int(w.Padding) - w.lineWidth
	if w.PadFunc != nil {
		for i := 0; i < n; i++ {
			w.PadFunc(w.ansiWriter)
		}
		return nil
	}
	_, err := w.ansiWriter.WriteString(strings.Repeat(" ", n))
	return err
}

// Close finishes the padding operation, flushing any partial final
// line. Always call it before Bytes or String.
func (w *Writer) Close() error {
	return w.Flush()
}

// Flush pads a pending partial line and moves buffered output into the
// result cache. The Writer can keep receiving input afterwards.
func (w *Writer) Flush() error {
	if w.lineWidth != 0 {
		if err := w.pad(); err != nil {
			return err
		}
		if err := w.ansiWriter.ResetAnsi(); err != nil {
			return err
		}
	}

	w.cache.Reset()
	if _, err := w.buf.WriteTo(&w.cache); err != nil {
		return err
	}
	w.lineWidth = 0
	w.inEscape = false
	return nil
}

// Bytes pads every line of b to width visible columns.
func Bytes(b []byte, width uint) []byte {
	f := NewWriter(width, nil)
	_, _ = f.Write(b)
	_ = f.Close()
	return f.Bytes()
}

// String pads every line of s to width visible columns.
func String(s string, width uint) string {
	return string(Bytes([]byte(s), width))
}
