// ABOUTME: Width-report records emitted by the width operation
// ABOUTME: Hand-written easyjson jwriter encoding; no reflection on the hot path

package report

import (
	"io"

	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/termflow/pkg/ansi"
	"github.com/mauromedda/termflow/pkg/cells"
)

// Measurement describes one input's sizes under every width model the
// engine knows: raw bytes, visible bytes, column-tracked width, and
// terminal display cells.
type Measurement struct {
	Source       string `json:"source"`
	RawLen       int    `json:"raw_len"`
	VisibleLen   int    `json:"visible_len"`
	VisibleWidth int    `json:"visible_width"`
	CellWidth    int    `json:"cell_width"`
}

// Measure computes a Measurement for s. Source names the input origin,
// "stdin" or a file path.
func Measure(source, s string) Measurement {
	return Measurement{
		Source:       source,
		RawLen:       len(s),
		VisibleLen:   ansi.VisibleLen(s),
		VisibleWidth: ansi.VisibleWidth(s),
		CellWidth:    cells.Width(s),
	}
}

// MarshalEasyJSON encodes m with easyjson's streaming writer.
func (m Measurement) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"source":`)
	w.String(m.Source)
	w.RawString(`,"raw_len":`)
	w.Int(m.RawLen)
	w.RawString(`,"visible_len":`)
	w.Int(m.VisibleLen)
	w.RawString(`,"visible_width":`)
	w.Int(m.VisibleWidth)
	w.RawString(`,"cell_width":`)
	w.Int(m.CellWidth)
	w.RawByte('}')
}

// MarshalJSON implements json.Marshaler on top of the jwriter encoder.
func (m Measurement) MarshalJSON() ([]byte, error) {
	var w jwriter.Writer
	m.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// Write emits m to out as a single JSON line.
func Write(out io.Writer, m Measurement) error {
	var w jwriter.Writer
	m.MarshalEasyJSON(&w)
	w.RawByte('\n')
	_, err := w.DumpTo(out)
	return err
}
