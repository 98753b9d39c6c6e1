// ABOUTME: Tests for word-aware wrapping
// ABOUTME: Pins break placement, long-word overflow, and escape-transparent words

package wordwrap

import (
	"errors"
	"testing"

	"github.com/mauromedda/termflow/pkg/ansi"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "empty", input: "", limit: 8, want: ""},
		{name: "fits untouched", input: "hello", limit: 8, want: "hello"},
		{name: "limit zero passthrough", input: "hello world", limit: 0, want: "hello world"},
		{
			name:  "classic sentence",
			input: "the quick brown fox jumped over the lazy dog",
			limit: 16,
			want:  "the quick brown\nfox jumped over\nthe lazy dog",
		},
		{name: "long word overflows", input: "foo foobarbazqux", limit: 8, want: "foo\nfoobarbazqux"},
		{name: "hyphen is a breakpoint", input: "foo-bar", limit: 5, want: "foo-\nbar"},
		{name: "existing newline kept", input: "ab\ncd", limit: 10, want: "ab\ncd"},
		{name: "leading space kept when it fits", input: " x\n", limit: 5, want: " x\n"},
		{name: "trailing space dropped at close", input: "ab ", limit: 5, want: "ab"},
		{name: "unicode words count bytes", input: "你好 世界", limit: 7, want: "你好\n世界"},
		{
			name:  "escapes do not count",
			input: "\x1b[31mred\x1b[0m text",
			limit: 8,
			want:  "\x1b[31mred\x1b[0m text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := String(tt.input, tt.limit)
			if got != tt.want {
				t.Errorf("String(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestWriter_KeepNewlinesDisabled(t *testing.T) {
	t.Parallel()

	f := NewWriter(3)
	f.KeepNewlines = false
	if _, err := f.Write([]byte("a\nb\nc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := f.String(); got != "a b\nc" {
		t.Errorf("String() = %q, want %q", got, "a b\nc")
	}
}

func TestWriter_CustomBreakpoints(t *testing.T) {
	t.Parallel()

	f := NewWriter(5)
	f.Breakpoints = []rune{'/'}
	if _, err := f.Write([]byte("foo/bar")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := f.String(); got != "foo/\nbar" {
		t.Errorf("String() = %q, want %q", got, "foo/\nbar")
	}
}

func TestWriter_InvalidUTF8(t *testing.T) {
	t.Parallel()

	f := NewWriter(8)
	n, err := f.Write([]byte{0x80})
	if !errors.Is(err, ansi.ErrInvalidUTF8) {
		t.Fatalf("Write error = %v, want ErrInvalidUTF8", err)
	}
	if n != 0 {
		t.Errorf("Write = %d, want 0", n)
	}
}

// Wrapped output never exceeds the limit unless a single word does.
func TestLineLimitProperty(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"the quick brown fox jumped over the lazy dog",
		"\x1b[1mstyled\x1b[0m words in a \x1b[31mlonger\x1b[0m sentence",
		"short",
	}
	limits := []int{4, 8, 16, 30}

	for _, in := range inputs {
		for _, limit := range limits {
			got := String(in, limit)
			for _, line := range splitLines(got) {
				if w := ansi.VisibleLen(line); w > limit {
					if !hasOverlongWord(line, limit) {
						t.Errorf("String(%q, %d): line %q has width %d", in, limit, line, w)
					}
				}
			}
		}
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func hasOverlongWord(line string, limit int) bool {
	w := 0
	for _, c := range ansi.VisibleRunes(line) {
		if c == ' ' {
			w = 0
			continue
		}
		w += len(string(c))
		if w > limit {
			return true
		}
	}
	return false
}
