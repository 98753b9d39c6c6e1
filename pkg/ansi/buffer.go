// ABOUTME: Escape-aware byte buffer with checked and unchecked string views
// ABOUTME: Accumulates raw bytes; measures visible length without the escape spans

package ansi

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Buffer is a growable byte buffer that understands ANSI escape
// sequences well enough to measure the visible length of its contents.
// The zero value is ready to use. Writes accept arbitrary bytes;
// decoding is checked only by the accessors that need text.
type Buffer struct {
	buf bytes.Buffer
}

// Write appends p to the buffer. The returned error is always nil.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.buf.WriteString(s)
}

// WriteRune appends the UTF-8 encoding of c to the buffer.
func (b *Buffer) WriteRune(c rune) (int, error) {
	return b.buf.WriteRune(c)
}

// WriteByte appends c to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	return b.buf.WriteByte(c)
}

// Len returns the number of raw bytes held, escape sequences included.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Bytes returns the raw contents. The slice aliases the buffer and is
// valid only until the next mutation.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Reset empties the buffer for reuse.
func (b *Buffer) Reset() {
	b.buf.Reset()
}

// String returns the contents as text after verifying they decode as
// valid UTF-8. It wraps ErrInvalidUTF8 when they do not.
func (b *Buffer) String() (string, error) {
	if !utf8.Valid(b.buf.Bytes()) {
		return "", fmt.Errorf("buffer contents: %w", ErrInvalidUTF8)
	}
	return b.buf.String(), nil
}

// UncheckedString returns the contents as text without validating them.
// The caller guarantees the buffer holds valid UTF-8, typically because
// every write came from string or rune input. When the bytes may have
// come from an untrusted source, use String instead; handing malformed
// bytes to code that assumes decodable text is on the caller.
func (b *Buffer) UncheckedString() string {
	return b.buf.String()
}

// VisibleLen returns the visible length of the contents in UTF-8 bytes,
// excluding escape sequences. It wraps ErrInvalidUTF8 when the contents
// do not decode, so the count can never silently mix byte and rune
// arithmetic on malformed input.
func (b *Buffer) VisibleLen() (int, error) {
	p := b.buf.Bytes()
	if !utf8.Valid(p) {
		return 0, fmt.Errorf("buffer contents: %w", ErrInvalidUTF8)
	}
	return VisibleLen(string(p)), nil
}
