// ABOUTME: Renders text with a left margin inside a fixed-width padded box
// ABOUTME: Chains the indent writer into the padding writer

package margin

import (
	"bytes"
	"io"

	"github.com/mauromedda/termflow/pkg/indent"
	"github.com/mauromedda/termflow/pkg/padding"
)

// Writer applies a left margin to every line and pads the result to a
// fixed visible width. The margin characters spend part of the width
// budget, so output lines all end at the same column.
type Writer struct {
	buf bytes.Buffer
	pw  *padding.Writer
	iw  *indent.Writer
}

// NewWriter returns a Writer rendering into an internal buffer. width
// is the padded total; margin is the number of characters inserted
// before each line. marginFunc, when set, writes a single margin or pad
// character and is used for both.
func NewWriter(width, margin uint, marginFunc padding.PaddingFunc) *Writer {
	w := &Writer{}
	w.pw = padding.NewWriterPipe(&w.buf, width, marginFunc)
	w.iw = indent.NewWriterPipe(w.pw, margin, indent.IndentFunc(marginFunc))
	return w
}

// NewWriterPipe returns a Writer that forwards the rendered result to
// forward instead of buffering it.
func NewWriterPipe(forward io.Writer, width, margin uint, marginFunc padding.PaddingFunc) *Writer {
	w := &Writer{}
	w.pw = padding.NewWriterPipe(forward, width, marginFunc)
	w.iw = indent.NewWriterPipe(w.pw, margin, indent.IndentFunc(marginFunc))
	return w
}

// Write adds b to the margin box.
func (w *Writer) Write(b []byte) (int, error) {
	return w.iw.Write(b)
}

// Close finishes the rendering, padding a trailing partial line. Always
// call it before Bytes or String.
func (w *Writer) Close() error {
	return w.pw.Close()
}

// Bytes returns the rendered result. Close must run first.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the rendered result. Close must run first.
func (w *Writer) String() string {
	return w.buf.String()
}

// Bytes renders b with a margin inside a width-column box.
func Bytes(b []byte, width, margin uint) []byte {
	f := NewWriter(width, margin, nil)
	_, _ = f.Write(b)
	_ = f.Close()
	return f.Bytes()
}

// String renders s with a margin inside a width-column box.
func String(s string, width, margin uint) string {
	return string(Bytes([]byte(s), width, margin))
}
