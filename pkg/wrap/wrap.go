// ABOUTME: Unconditional line wrapping at a visible-byte limit, splitting inside words
// ABOUTME: Expands tabs first; optionally keeps leading whitespace after forced breaks

package wrap

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mauromedda/termflow/pkg/ansi"
)

const defaultTabWidth = 8

var defaultNewline = []rune{'\n'}

// Wrap breaks lines at exactly Limit visible bytes, splitting inside
// words when it must. Tabs are expanded to TabWidth spaces before
// wrapping. After a forced break, leading whitespace on the new line is
// dropped unless PreserveSpace is set; breaks already present in the
// input keep their whitespace.
type Wrap struct {
	Limit         int
	Newline       []rune
	KeepNewlines  bool
	PreserveSpace bool
	TabWidth      int

	buf      bytes.Buffer
	lineLen  int
	inEscape bool
	forceful bool
}

// NewWriter returns a Wrap with newline handling and tab expansion at
// their defaults.
func NewWriter(limit int) *Wrap {
	return &Wrap{
		Limit:        limit,
		Newline:      defaultNewline,
		KeepNewlines: true,
		TabWidth:     defaultTabWidth,
	}
}

// Bytes hard-wraps b at limit visible bytes.
func Bytes(b []byte, limit int) []byte {
	f := NewWriter(limit)
	_, _ = f.Write(b)
	return f.Bytes()
}

// String hard-wraps s at limit visible bytes.
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

func (w *Wrap) addNewline() {
	w.buf.WriteRune('\n')
	w.lineLen = 0
}

// Write wraps b. b must be valid UTF-8; otherwise nothing is consumed
// and the error wraps ansi.ErrInvalidUTF8.
func (w *Wrap) Write(b []byte) (int, error) {
	if !utf8.Valid(b) {
		return 0, fmt.Errorf("wrap: %w", ansi.ErrInvalidUTF8)
	}

	s := strings.ReplaceAll(string(b), "\t", strings.Repeat(" ", w.TabWidth))
	if !w.KeepNewlines {
		s = strings.ReplaceAll(s, "\n", "")
	}

	if w.Limit <= 0 {
		_, err := w.buf.WriteString(s)
		return len(b), err
	}

	// Chunks without markers or line breaks that still fit skip the
	// rune walk entirely; their visible length is their byte length.
	if !w.inEscape && !strings.ContainsRune(s, ansi.Marker) &&
		w.lineLen+len(s) <= w.Limit &&
		!strings.ContainsFunc(s, func(c rune) bool { return inGroup(w.Newline, c) }) {
		w.lineLen += len(s)
		_, err := w.buf.WriteString(s)
		return len(b), err
	}

	for _, c := range s {
		switch {
		case c == ansi.Marker:
			w.inEscape = true
		case w.inEscape:
			if ansi.IsTerminator(c) {
				w.inEscape = false
			}
		case inGroup(w.Newline, c):
			w.addNewline()
			w.forceful = false
			continue
		default:
			width := utf8.RuneLen(c)

			if w.lineLen+width > w.Limit {
				w.addNewline()
				w.forceful = true
			}

			if w.lineLen == 0 {
				if w.forceful && !w.PreserveSpace && unicode.IsSpace(c) {
					continue
				}
				w.forceful = false
			}

			w.lineLen += width
		}

		w.buf.WriteRune(c)
	}
	return len(b), nil
}

// Bytes returns the wrapped result.
func (w *Wrap) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the wrapped result.
func (w *Wrap) String() string {
	return w.buf.String()
}
