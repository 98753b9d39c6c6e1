// ABOUTME: Scanner yields the visible runes of a string, skipping escape sequences
// ABOUTME: Two-state walk: normal runes are returned, escape spans are consumed silently

package ansi

import "unicode/utf8"

// Scanner iterates over the visible runes of a string in order,
// consuming ANSI escape sequences without yielding them. A Scanner is
// single-use; construct a new one to walk the input again.
type Scanner struct {
	rest     string
	inEscape bool
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{rest: s}
}

// Next returns the next visible rune of the input. ok is false once the
// input is exhausted. A marker flips the Scanner into escape mode until
// a terminator arrives; an unterminated trailing sequence is consumed
// without yielding anything.
func (s *Scanner) Next() (r rune, ok bool) {
	for len(s.rest) > 0 {
		c, size := utf8.DecodeRuneInString(s.rest)
		s.rest = s.rest[size:]

		switch {
		case c == Marker:
			s.inEscape = true
		case s.inEscape:
			if IsTerminator(c) {
				s.inEscape = false
			}
		default:
			return c, true
		}
	}
	return 0, false
}

// VisibleRunes returns the visible runes of s as a slice, in input order.
func VisibleRunes(s string) []rune {
	var runes []rune
	sc := NewScanner(s)
	for c, ok := sc.Next(); ok; c, ok = sc.Next() {
		runes = append(runes, c)
	}
	return runes
}
