// ABOUTME: ANSI escape sequence classification shared by every termflow package
// ABOUTME: Defines the escape marker and the terminator byte classes

package ansi

// Marker is the rune that opens an ANSI escape sequence (ESC, U+001B).
const Marker = '\x1b'

// ResetSeq clears all active SGR styling when written to a terminal.
const ResetSeq = "\x1b[0m"

// IsMarker reports whether c opens an escape sequence.
func IsMarker(c rune) bool {
	return c == Marker
}

// IsTerminator reports whether c closes an escape sequence. Terminators
// are the final-byte classes of CSI sequences: '@' through 'Z' (0x40-0x5A)
// and 'a' through 'z' (0x61-0x7A). Digits, ';', '[' and other intermediate
// bytes fall outside both ranges and keep the sequence open.
func IsTerminator(c rune) bool {
	return (c >= 0x40 && c <= 0x5a) || (c >= 0x61 && c <= 0x7a)
}
