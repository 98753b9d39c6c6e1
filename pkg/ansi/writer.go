// ABOUTME: Style-tracking pass-through writer for ANSI-styled text
// ABOUTME: Buffers escape spans, remembers the last SGR sequence, resets and restores it

package ansi

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

var resetSuffix = []byte("[0m")

// Writer forwards everything written to it to Forward unchanged while
// tracking ANSI escape sequences as they stream past. It remembers the
// most recent non-reset SGR sequence, so downstream code can close an
// open style with ResetAnsi, inject content such as line breaks or
// pad characters, and reopen the style with RestoreAnsi.
//
// A Writer belongs to a single goroutine; it holds no locks.
type Writer struct {
	Forward io.Writer

	inEscape   bool
	pending    bytes.Buffer // escape span under construction, not yet forwarded
	lastSeq    bytes.Buffer // most recent non-reset SGR sequence
	seqChanged bool         // style emitted since the last reset

	runeBuf [utf8.UTFMax]byte
}

// NewWriter returns a Writer forwarding to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Forward: w}
}

// Write forwards p to Forward, tracking escape sequences. p must be
// valid UTF-8; otherwise nothing is written and the error wraps
// ErrInvalidUTF8. Visible runes are forwarded as they arrive; escape
// bytes are buffered until the sequence terminator and forwarded as one
// span. When Forward fails the Writer keeps the state it had before the
// failing rune, so the remainder of p can be retried.
func (w *Writer) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, fmt.Errorf("write: %w", ErrInvalidUTF8)
	}
	return w.writeString(string(p))
}

// WriteString forwards s like Write. It reports ErrInvalidUTF8 when s
// does not hold valid UTF-8 rather than forwarding mangled runes.
func (w *Writer) WriteString(s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("write: %w", ErrInvalidUTF8)
	}
	return w.writeString(s)
}

func (w *Writer) writeString(s string) (int, error) {
	for i, c := range s {
		if err := w.writeRune(c); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

func (w *Writer) writeRune(c rune) error {
	switch {
	case c == Marker:
		w.inEscape = true
		w.pending.WriteRune(c)
	case w.inEscape:
		if !IsTerminator(c) {
			w.pending.WriteRune(c)
			return nil
		}
		return w.closeSpan(c)
	default:
		return w.forwardRune(c)
	}
	return nil
}

// closeSpan forwards the pending escape span terminated by c. The span
// is flushed before any tracking state changes, so a sink failure
// leaves the Writer exactly as it was before c arrived.
func (w *Writer) closeSpan(c rune) error {
	mark := w.pending.Len()
	w.pending.WriteRune(c)
	span := w.pending.Bytes()

	if _, err := w.Forward.Write(span); err != nil {
		w.pending.Truncate(mark)
		return err
	}

	switch {
	case bytes.HasSuffix(span, resetSuffix):
		// A reset span wipes the remembered style entirely; a later
		// RestoreAnsi has nothing to reopen.
		w.lastSeq.Reset()
		w.seqChanged = false
	case c == 'm':
		w.lastSeq.Reset()
		w.lastSeq.Write(span)
		w.seqChanged = true
	}

	w.inEscape = false
	w.pending.Reset()
	return nil
}

func (w *Writer) forwardRune(c rune) error {
	n := utf8.EncodeRune(w.runeBuf[:], c)
	_, err := w.Forward.Write(w.runeBuf[:n])
	return err
}

// LastSequence returns the most recent non-reset SGR sequence seen,
// or the empty string when none is cached.
func (w *Writer) LastSequence() string {
	return w.lastSeq.String()
}

// ResetAnsi writes the SGR reset sequence to Forward, but only when a
// style sequence has been emitted since the last reset. The cached
// sequence survives, so RestoreAnsi can reopen the style afterwards.
// Unstyled input never triggers a reset, keeping plain text plain.
func (w *Writer) ResetAnsi() error {
	if !w.seqChanged {
		return nil
	}
	if _, err := io.WriteString(w.Forward, ResetSeq); err != nil {
		return err
	}
	w.seqChanged = false
	return nil
}

// RestoreAnsi re-emits the most recent non-reset SGR sequence, undoing
// a prior ResetAnsi. It is a no-op when no style is cached.
func (w *Writer) RestoreAnsi() error {
	if w.lastSeq.Len() == 0 {
		return nil
	}
	if _, err := w.Forward.Write(w.lastSeq.Bytes()); err != nil {
		return err
	}
	w.seqChanged = true
	return nil
}
