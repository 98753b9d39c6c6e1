// ABOUTME: Tests for line padding of ANSI-styled text
// ABOUTME: Pins pad-reset-newline ordering, tab-aware columns, and final-line flushing

package padding

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mauromedda/termflow/pkg/ansi"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width uint
		want  string
	}{
		{name: "empty", input: "", width: 4, want: ""},
		{name: "pads final partial line", input: "hello", width: 8, want: "hello   "},
		{name: "pads each line", input: "a\nbc\n", width: 3, want: "a  \nbc \n"},
		{name: "exact width untouched", input: "abc\n", width: 3, want: "abc\n"},
		{name: "wide line untouched", input: "abcdef\n", width: 3, want: "abcdef\n"},
		{name: "zero width passthrough", input: "a\nb\n", width: 0, want: "a\nb\n"},
		{name: "closed style needs no reset", input: "\x1b[31mred\x1b[0m\n", width: 5, want: "\x1b[31mred\x1b[0m  \n"},
		{name: "open style reset after pad", input: "\x1b[31mred\n", width: 5, want: "\x1b[31mred  \x1b[0m\n"},
		{name: "tab advances to stop", input: "a\t\n", width: 10, want: "a\t  \n"},
		{name: "unicode counts encoded bytes", input: "héllo\n", width: 8, want: "héllo  \n"},
		{name: "open style on final line", input: "\x1b[31mred", width: 5, want: "\x1b[31mred  \x1b[0m"},
		{name: "escapes cost no columns", input: "\x1b[1m\x1b[4mx\n", width: 3, want: "\x1b[1m\x1b[4mx  \x1b[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := String(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("String(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()

	got := Bytes([]byte("hi\n"), 4)
	if string(got) != "hi  \n" {
		t.Errorf("Bytes = %q, want %q", got, "hi  \n")
	}
}

func TestWriter_PadFunc(t *testing.T) {
	t.Parallel()

	f := NewWriter(6, func(w io.Writer) {
		_, _ = w.Write([]byte("."))
	})
	if _, err := f.Write([]byte("abc\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := f.String(); got != "abc...\n" {
		t.Errorf("String() = %q, want %q", got, "abc...\n")
	}
}

func TestWriter_Pipe(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	f := NewWriterPipe(&sink, 4, nil)
	if _, err := f.Write([]byte("ab\ncd")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := sink.String(); got != "ab  \ncd  " {
		t.Errorf("piped output = %q, want %q", got, "ab  \ncd  ")
	}
}

func TestWriter_InvalidUTF8(t *testing.T) {
	t.Parallel()

	f := NewWriter(4, nil)
	n, err := f.Write([]byte{'a', 0xff})
	if !errors.Is(err, ansi.ErrInvalidUTF8) {
		t.Fatalf("Write error = %v, want ErrInvalidUTF8", err)
	}
	if n != 0 {
		t.Errorf("Write = %d, want 0", n)
	}
}

func TestWriter_MultipleWrites(t *testing.T) {
	t.Parallel()

	f := NewWriter(5, nil)
	for _, chunk := range []string{"ab", "c\nde", "f"} {
		if _, err := f.Write([]byte(chunk)); err != nil {
			t.Fatalf("Write(%q): %v", chunk, err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := f.String(); got != "abc  \ndef  " {
		t.Errorf("String() = %q, want %q", got, "abc  \ndef  ")
	}
}

// Every output line reaches the target width, whatever the input shape.
func TestMinimumWidthProperty(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"a",
		"hello",
		"a\nbc\ndef",
		"a\n\nb",
		"wider than any target here\n",
		"\x1b[31mstyled\x1b[0m\nplain",
		"col\there\n",
		"héllo\n你好",
	}
	widths := []uint{0, 1, 2, 3, 5, 9, 17}

	for _, in := range inputs {
		for _, width := range widths {
			got := String(in, width)
			lines := strings.Split(got, "\n")
			for i, line := range lines {
				if i == len(lines)-1 && line == "" {
					continue
				}
				if w := ansi.VisibleWidth(line); w < int(width) {
					t.Errorf("String(%q, %d): line %q has width %d", in, width, line, w)
				}
			}
		}
	}
}
