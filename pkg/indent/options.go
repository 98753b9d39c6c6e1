// ABOUTME: Option-driven line indentation with style, count, and line-ending control
// ABOUTME: Plain line-based transform; tagged for YAML and JSON config wiring

package indent

import "strings"

// Style selects the indent character.
type Style string

const (
	Spaces Style = "spaces"
	Tabs   Style = "tabs"
)

// LineEnding selects the newline written between output lines. The
// zero value keeps whatever the input uses, preferring CRLF when the
// input contains one.
type LineEnding string

const (
	AutoEnding LineEnding = ""
	LF         LineEnding = "lf"
	CRLF       LineEnding = "crlf"
)

// Options describes an indentation for StringWithOptions. Unlike the
// streaming Writer this API is line-ending aware and can skip lines
// that already carry the prefix; it does not interpret escape
// sequences.
type Options struct {
	Style        Style      `yaml:"style" json:"style"`
	Count        uint       `yaml:"count" json:"count"`
	Ending       LineEnding `yaml:"ending,omitempty" json:"ending,omitempty"`
	SkipIndented bool       `yaml:"skip_indented,omitempty" json:"skip_indented,omitempty"`
}

// DefaultOptions indents with four spaces and keeps the input's line
// endings.
func DefaultOptions() Options {
	return Options{Style: Spaces, Count: 4}
}

// Prefix returns the literal indent string the options describe.
func (o Options) Prefix() string {
	if o.Style == Tabs {
		return strings.Repeat("\t", int(o.Count))
	}
	return strings.Repeat(" ", int(o.Count))
}

// lineBreak resolves the ending to write, sniffing the input when no
// explicit ending is set.
func (o Options) lineBreak(s string) string {
	switch o.Ending {
	case LF:
		return "\n"
	case CRLF:
		return "\r\n"
	}
	if strings.Contains(s, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// StringWithOptions indents every line of s according to o. A trailing
// newline survives; empty input stays empty.
func StringWithOptions(s string, o Options) string {
	if s == "" || o.Count == 0 {
		return s
	}

	prefix := o.Prefix()
	ending := o.lineBreak(s)

	trailing := strings.HasSuffix(s, "\n")
	body := strings.TrimSuffix(s, "\n")
	body = strings.TrimSuffix(body, "\r")

	lines := strings.Split(body, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if o.SkipIndented && strings.HasPrefix(line, prefix) {
			out[i] = line
			continue
		}
		out[i] = prefix + line
	}

	res := strings.Join(out, ending)
	if trailing {
		res += ending
	}
	return res
}
