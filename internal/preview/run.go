// ABOUTME: Entry point for the interactive preview
// ABOUTME: Creates the tea.Program on stderr and blocks until the user quits

package preview

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the preview and blocks until the user exits. The program
// draws on stderr so a redirected stdout stays clean.
func Run(ops []Op, start, input string, width int) error {
	p := tea.NewProgram(
		NewModel(ops, start, input, width),
		tea.WithOutput(os.Stderr),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
