// ABOUTME: Pre-sets lipgloss dark background before Bubble Tea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Seeding the background color stops lipgloss from ever issuing
	// OSC 10/11 terminal queries. Bubble Tea's init() consults
	// lipgloss.HasDarkBackground(); with the value already set, the
	// sync.Once that fires the query never runs, so no async query
	// response can leak into the preview's input stream.
	//
	// This package must NOT import bubbletea (directly or
	// transitively) so that Go's init order guarantees this runs
	// first.
	lipgloss.SetHasDarkBackground(true)
}
