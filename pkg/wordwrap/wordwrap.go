// ABOUTME: Word-aware line wrapping at a visible-byte limit
// ABOUTME: Buffers the current word in an escape-aware buffer; never splits inside a word

package wordwrap

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mauromedda/termflow/pkg/ansi"
)

var (
	defaultBreakpoints = []rune{'-'}
	defaultNewline     = []rune{'\n'}
)

// WordWrap wraps text so no line exceeds Limit visible bytes, breaking
// at whitespace and at Breakpoints runes. A single word longer than the
// limit overflows its line untouched; pair with wrap when words must be
// split. Escape sequences travel inside the word they decorate and
// never count toward the limit.
type WordWrap struct {
	Limit        int
	Breakpoints  []rune
	Newline      []rune
	KeepNewlines bool

	buf   bytes.Buffer
	space bytes.Buffer
	word  ansi.Buffer

	lineLen  int
	inEscape bool
}

// NewWriter returns a WordWrap with the default breakpoints, newline
// set, and newline handling.
func NewWriter(limit int) *WordWrap {
	return &WordWrap{
		Limit:        limit,
		Breakpoints:  defaultBreakpoints,
		Newline:      defaultNewline,
		KeepNewlines: true,
	}
}

// Bytes wraps b at limit visible bytes.
func Bytes(b []byte, limit int) []byte {
	f := NewWriter(limit)
	_, _ = f.Write(b)
	_ = f.Close()
	return f.Bytes()
}

// String wraps s at limit visible bytes.
func String(s string, limit int) string {
	return string(Bytes([]byte(s), limit))
}

func inGroup(a []rune, c rune) bool {
	for _, v := range a {
		if v == c {
			return true
		}
	}
	return false
}

// wordWidth measures the buffered word in visible bytes. The word
// buffer only ever receives runes this writer wrote, so the unchecked
// view is safe.
func (w *WordWrap) wordWidth() int {
	return ansi.VisibleLen(w.word.UncheckedString())
}

func (w *WordWrap) addSpace() {
	w.lineLen += w.space.Len()
	w.buf.Write(w.space.Bytes())
	w.space.Reset()
}

func (w *WordWrap) addWord() {
	if w.word.Len() > 0 {
		w.addSpace()
		w.lineLen += w.wordWidth()
		w.buf.Write(w.word.Bytes())
		w.word.Reset()
	}
}

func (w *WordWrap) addNewline() {
	w.buf.WriteRune('\n')
	w.lineLen = 0
	w.space.Reset()
}

// Write wraps b. b must be valid UTF-8; otherwise nothing is consumed
// and the error wraps ansi.ErrInvalidUTF8. With KeepNewlines unset,
// newlines in the input are replaced by spaces before wrapping.
func (w *WordWrap) Write(b []byte) (int, error) {
	if !utf8.Valid(b) {
		return 0, fmt.Errorf("wordwrap: %w", ansi.ErrInvalidUTF8)
	}
	if w.Limit < 1 {
		return w.buf.Write(b)
	}

	s := string(b)
	if !w.KeepNewlines {
		s = strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
	}

	for _, c := range s {
		switch {
		case c == ansi.Marker:
			w.word.WriteRune(c)
			w.inEscape = true
		case w.inEscape:
			w.word.WriteRune(c)
			if ansi.IsTerminator(c) {
				w.inEscape = false
			}
		case inGroup(w.Newline, c):
			// A hard break. Trailing whitespace survives only when it
			// still fits on the line.
			if w.word.Len() == 0 {
				if w.lineLen+w.space.Len() > w.Limit {
					w.lineLen = 0
				} else {
					w.buf.Write(w.space.Bytes())
				}
				w.space.Reset()
			}
			w.addWord()
			w.addNewline()
		case unicode.IsSpace(c):
			w.addWord()
			w.space.WriteRune(c)
		case inGroup(w.Breakpoints, c):
			w.addSpace()
			w.addWord()
			w.buf.WriteRune(c)
			w.lineLen += utf8.RuneLen(c)
		default:
			w.word.WriteRune(c)
			if w.lineLen+w.space.Len()+w.wordWidth() > w.Limit &&
				w.wordWidth() < w.Limit {
				w.addNewline()
			}
		}
	}
	return len(b), nil
}

// Close flushes the pending word. Always call it before Bytes or
// String. Pending whitespace without a following word is dropped.
func (w *WordWrap) Close() error {
	w.addWord()
	return nil
}

// Bytes returns the wrapped result. Close must run first.
func (w *WordWrap) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the wrapped result. Close must run first.
func (w *WordWrap) String() string {
	return w.buf.String()
}
