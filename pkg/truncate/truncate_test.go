// ABOUTME: Tests for visible-width truncation with tail markers
// ABOUTME: Pins fit passthrough, style closing at the cut, and the width equality property

package truncate

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mauromedda/termflow/pkg/ansi"
)

func TestStringWithTail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width uint
		tail  string
		want  string
	}{
		{name: "empty", input: "", width: 5, tail: "...", want: ""},
		{name: "fits untouched", input: "hello", width: 8, tail: "...", want: "hello"},
		{name: "fits exactly", input: "hello", width: 5, tail: "...", want: "hello"},
		{name: "fits inside tail band", input: "123456789", width: 10, tail: "...", want: "123456789"},
		{name: "cut with tail", input: "hello world", width: 8, tail: "...", want: "hello..."},
		{name: "cut with empty tail", input: "hello", width: 3, tail: "", want: "hel"},
		{name: "width equals tail", input: "hello", width: 3, tail: "...", want: "..."},
		{name: "width below tail discards input", input: "hello", width: 2, tail: "...", want: "..."},
		{name: "styled passthrough", input: "\x1b[31mred\x1b[0m", width: 5, tail: "...", want: "\x1b[31mred\x1b[0m"},
		{name: "cut closes open style", input: "\x1b[31mhello world\x1b[0m", width: 8, tail: "...", want: "\x1b[31mhello\x1b[0m..."},
		{name: "cut after closed style skips reset", input: "\x1b[31mab\x1b[0mcdefgh", width: 5, tail: "…", want: "\x1b[31mab\x1b[0m…"},
		{name: "tab advances to stop", input: "a\tbcd", width: 10, tail: "", want: "a\tbc"},
		{name: "newline resets column so short tail fits", input: "123456789\nab", width: 5, tail: "...", want: "123456789\nab"},
		{name: "wide rune stops short of budget", input: "你好世界", width: 8, tail: "", want: "你好"},
		{name: "emoji fills budget exactly", input: "ab👋cd", width: 6, tail: "", want: "ab👋"},
		{name: "unterminated span preserved on passthrough", input: "ab\x1b[", width: 10, tail: "...", want: "ab\x1b["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := StringWithTail(tt.input, tt.width, tt.tail)
			if got != tt.want {
				t.Errorf("StringWithTail(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.tail, got, tt.want)
			}
		})
	}
}

func TestString_DefaultTail(t *testing.T) {
	t.Parallel()

	got := String("hello world", 8)
	if got != "hello..." {
		t.Errorf("String(%q, 8) = %q, want %q", "hello world", got, "hello...")
	}
}

func TestBytesWithTail(t *testing.T) {
	t.Parallel()

	got := BytesWithTail([]byte("abcdef"), 4, "!")
	if string(got) != "abc!" {
		t.Errorf("BytesWithTail = %q, want %q", got, "abc!")
	}
}

// Output width must equal min(input width, target) whenever the target
// can hold the tail. Inputs stay within single-column runes so no rune
// straddles the cut.
func TestWidthEquality(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"a",
		"hello",
		"hello world, how are you",
		"\x1b[31mstyled text here\x1b[0m plain after",
	}
	widths := []uint{0, 1, 2, 3, 5, 8, 13, 40}
	tails := []string{"", ".", "..."}

	for _, in := range inputs {
		for _, width := range widths {
			for _, tail := range tails {
				if int(width) < ansi.VisibleWidth(tail) {
					continue
				}
				got := StringWithTail(in, width, tail)
				want := min(ansi.VisibleWidth(in), int(width))
				if ansi.VisibleWidth(got) != want {
					t.Errorf("StringWithTail(%q, %d, %q) = %q with width %d, want width %d",
						in, width, tail, got, ansi.VisibleWidth(got), want)
				}
			}
		}
	}
}

func TestTruncateIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"short",
		"a longer line that will certainly be cut",
		"\x1b[34mstyled and long enough to cut somewhere\x1b[0m",
	}

	for _, in := range inputs {
		once := StringWithTail(in, 12, "...")
		twice := StringWithTail(once, 12, "...")
		if once != twice {
			t.Errorf("truncating twice changed %q: %q -> %q", in, once, twice)
		}
	}
}

func TestWriter_Pipe(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	f := NewWriterPipe(&sink, 6, "..")
	if _, err := f.Write([]byte("hello ")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := f.Write([]byte("world")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := sink.String(); got != "hell.." {
		t.Errorf("piped output = %q, want %q", got, "hell..")
	}
}

func TestWriter_CloseTwice(t *testing.T) {
	t.Parallel()

	f := NewWriter(4, ".")
	f.Write([]byte("abcdef"))
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if got := f.String(); got != "abc." {
		t.Errorf("String() = %q, want %q", got, "abc.")
	}
}

func TestWriter_InvalidUTF8(t *testing.T) {
	t.Parallel()

	f := NewWriter(4, "")
	n, err := f.Write([]byte{0xff, 'a'})
	if !errors.Is(err, ansi.ErrInvalidUTF8) {
		t.Fatalf("Write error = %v, want ErrInvalidUTF8", err)
	}
	if n != 0 {
		t.Errorf("Write = %d, want 0", n)
	}
}
