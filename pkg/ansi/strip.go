// ABOUTME: Streaming escape stripper built on the x/text transform interface
// ABOUTME: Deletes escape spans from a byte stream, surviving spans split across chunks

package ansi

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Stripper removes ANSI escape sequences from a byte stream. It
// implements transform.Transformer, so it composes with
// transform.NewReader, transform.NewWriter and transform.String. Escape
// state carries across Transform calls, which keeps spans split between
// chunks intact. The zero value is ready to use.
type Stripper struct {
	inEscape bool
}

var _ transform.Transformer = (*Stripper)(nil)

// Transform implements transform.Transformer. Bytes outside escape
// spans are copied through untouched, including bytes that do not
// decode as UTF-8.
func (t *Stripper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		switch {
		case c == Marker:
			t.inEscape = true
		case t.inEscape:
			if IsTerminator(c) {
				t.inEscape = false
			}
		default:
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer.
func (t *Stripper) Reset() {
	t.inEscape = false
}

// Strip returns s with every ANSI escape sequence removed. Input
// without a marker is returned unchanged without allocating.
func Strip(s string) string {
	if !strings.ContainsRune(s, Marker) {
		return s
	}
	out, _, err := transform.String(&Stripper{}, s)
	if err != nil {
		// Transform only ever reports the Short* sentinels, which
		// transform.String resolves itself.
		return s
	}
	return out
}
