// ABOUTME: Bubble Tea model for the interactive transform preview
// ABOUTME: Renders the active operation live; arrows resize, tab cycles operations

package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Op pairs an operation name with its transform. The width argument is
// the current preview width; operations that ignore width (dedent,
// strip) receive it anyway.
type Op struct {
	Name  string
	Apply func(s string, width int) (string, error)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	opStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
	ruleStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the immutable preview state. All Update paths return a
// modified copy; the input text never changes after construction.
type Model struct {
	ops    []Op
	active int
	input  string
	width  int

	termWidth  int
	termHeight int
}

// NewModel creates a preview over input starting at the given operation
// name and width. An unknown name falls back to the first operation.
func NewModel(ops []Op, start, input string, width int) Model {
	active := 0
	for i, op := range ops {
		if op.Name == start {
			active = i
			break
		}
	}
	if width < 1 {
		width = 1
	}
	return Model{ops: ops, active: active, input: input, width: width}
}

// Init returns nil; the preview needs no startup commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and window-size messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.width > 1 {
				m.width--
			}
		case "right", "l":
			m.width++
		case "tab":
			m.active = (m.active + 1) % len(m.ops)
		case "shift+tab":
			m.active = (m.active + len(m.ops) - 1) % len(m.ops)
		}

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	}

	return m, nil
}

// View renders header, transformed body, and key hints.
func (m Model) View() string {
	op := m.ops[m.active]

	var b strings.Builder
	b.WriteString(titleStyle.Render("termflow"))
	b.WriteString("  ")
	b.WriteString(opStyle.Render(op.Name))
	b.WriteString(hintStyle.Render(fmt.Sprintf("  width %d", m.width)))
	b.WriteString("\n")
	b.WriteString(m.rule())
	b.WriteString("\n")

	out, err := op.Apply(m.input, m.width)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(out)
	}

	b.WriteString("\n")
	b.WriteString(m.rule())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("←/→ width · tab op · q quit"))
	return b.String()
}

// rule renders a horizontal separator spanning the terminal.
func (m Model) rule() string {
	w := m.termWidth
	if w <= 0 {
		w = 40
	}
	return ruleStyle.Render(strings.Repeat("─", w))
}
