// ABOUTME: Visible width measurement in UTF-8 bytes, ignoring escape sequences
// ABOUTME: Byte-counting and column-tracking entry points, each with an ASCII fast path

package ansi

import "unicode/utf8"

// TabStop is the fixed tab grid used by VisibleWidth: a tab advances to
// the next multiple of TabStop columns.
const TabStop = 8

// AdvanceColumn returns the terminal column after writing the visible
// rune c at column col, using the same rules as VisibleWidth. Escape
// bytes must not be fed here; callers track escape state themselves or
// walk the input with a Scanner.
func AdvanceColumn(col int, c rune) int {
	switch c {
	case '\t':
		return col + TabStop - col%TabStop
	case '\n':
		return 0
	default:
		return col + utf8.RuneLen(c)
	}
}

// VisibleLen returns the length of s in UTF-8 bytes once escape
// sequences are excluded. Every visible rune counts its encoded length,
// so a plain ASCII rune counts one and an emoji counts four. Tabs and
// newlines are ordinary single-byte runes here; use VisibleWidth when
// column positions matter.
func VisibleLen(s string) int {
	if isASCII(s) {
		return visibleLenASCII(s)
	}
	return visibleLenRunes(s)
}

// VisibleWidth returns the terminal column reached after writing s,
// excluding escape sequences. A tab advances to the next multiple of
// eight, a newline resets the column to zero, and every other visible
// rune advances by its UTF-8 encoded length. For input without tabs or
// newlines the result equals VisibleLen.
func VisibleWidth(s string) int {
	if isASCII(s) {
		return visibleWidthASCII(s)
	}
	return visibleWidthRunes(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func visibleLenASCII(s string) int {
	n := 0
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == Marker:
			inEscape = true
		case inEscape:
			if IsTerminator(rune(c)) {
				inEscape = false
			}
		default:
			n++
		}
	}
	return n
}

func visibleLenRunes(s string) int {
	n := 0
	inEscape := false
	for _, c := range s {
		switch {
		case c == Marker:
			inEscape = true
		case inEscape:
			if IsTerminator(c) {
				inEscape = false
			}
		default:
			n += utf8.RuneLen(c)
		}
	}
	return n
}

func visibleWidthASCII(s string) int {
	col := 0
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == Marker:
			inEscape = true
		case inEscape:
			if IsTerminator(rune(c)) {
				inEscape = false
			}
		case c == '\t':
			col += TabStop - col%TabStop
		case c == '\n':
			col = 0
		default:
			col++
		}
	}
	return col
}

func visibleWidthRunes(s string) int {
	col := 0
	inEscape := false
	for _, c := range s {
		switch {
		case c == Marker:
			inEscape = true
		case inEscape:
			if IsTerminator(c) {
				inEscape = false
			}
		default:
			col = AdvanceColumn(col, c)
		}
	}
	return col
}
