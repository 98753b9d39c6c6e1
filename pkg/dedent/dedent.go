// ABOUTME: Removes the largest indentation shared by the indented lines of a text
// ABOUTME: Byte-wise two-pass walk: detect the minimum indent, then strip it

package dedent

import "strings"

// String trims the largest indentation shared by all indented lines of
// s. Spaces and tabs both count as one indent character; lines whose
// first byte is not whitespace do not take part in the minimum.
func String(s string) string {
	indent := minIndent(s)
	if indent == 0 {
		return s
	}
	return dedent(s, indent)
}

// Bytes trims like String.
func Bytes(b []byte) []byte {
	return []byte(String(string(b)))
}

func minIndent(s string) int {
	cur := 0
	lowest := 0
	counting := true

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t':
			if counting {
				cur++
			}
		case '\n':
			cur = 0
			counting = true
		default:
			if cur > 0 && (lowest == 0 || cur < lowest) {
				lowest = cur
			}
			cur = 0
			counting = false
		}
	}
	return lowest
}

func dedent(s string, indent int) string {
	omitted := 0
	omitting := true

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t':
			if omitting && omitted < indent {
				omitted++
				continue
			}
			b.WriteByte(s[i])
		case '\n':
			omitted = 0
			omitting = true
			b.WriteByte(s[i])
		default:
			omitting = false
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
