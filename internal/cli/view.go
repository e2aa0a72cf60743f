package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowbox/pkg/pipeline"
)

var (
	viewHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	viewFooterStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ViewModel - scrollable diagram pager
// =============================================================================

// ViewModel is the bubbletea model that pages through a rendered diagram.
type ViewModel struct {
	Title  string
	Lines  [][]rune
	Width  int // terminal columns
	Height int // terminal rows
	Row    int // first visible line
	Col    int // first visible column
}

// NewViewModel splits a rendered diagram into lines for scrolling.
func NewViewModel(title, diagram string) ViewModel {
	raw := strings.Split(diagram, "\n")
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		lines[i] = []rune(l)
	}
	return ViewModel{Title: title, Lines: lines, Width: 80, Height: 24}
}

func (m ViewModel) Init() tea.Cmd {
	return nil
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.Row--
		case "down", "j":
			m.Row++
		case "left", "h":
			m.Col -= 4
		case "right", "l":
			m.Col += 4
		case "pgup":
			m.Row -= m.bodyHeight()
		case "pgdown", " ":
			m.Row += m.bodyHeight()
		case "home", "g":
			m.Row, m.Col = 0, 0
		case "end", "G":
			m.Row = len(m.Lines)
		}
	}
	m.clamp()
	return m, nil
}

// bodyHeight is the number of diagram lines visible between header and footer.
func (m ViewModel) bodyHeight() int {
	return max(m.Height-2, 1)
}

func (m ViewModel) maxCol() int {
	widest := 0
	for _, l := range m.Lines {
		widest = max(widest, len(l))
	}
	return max(widest-m.Width, 0)
}

func (m *ViewModel) clamp() {
	m.Row = min(max(m.Row, 0), max(len(m.Lines)-m.bodyHeight(), 0))
	m.Col = min(max(m.Col, 0), m.maxCol())
}

func (m ViewModel) View() string {
	var b strings.Builder
	b.WriteString(viewHeaderStyle.Render(m.Title))
	b.WriteString("\n")

	end := min(m.Row+m.bodyHeight(), len(m.Lines))
	for _, line := range m.Lines[m.Row:end] {
		if m.Col < len(line) {
			line = line[m.Col:]
		} else {
			line = nil
		}
		if len(line) > m.Width {
			line = line[:m.Width]
		}
		b.WriteString(string(line))
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("line %d/%d  col %d  ↑↓←→ scroll • pgup/pgdn page • q quit",
		min(m.Row+1, len(m.Lines)), len(m.Lines), m.Col+1)
	b.WriteString(viewFooterStyle.Render(footer))
	return b.String()
}

// =============================================================================
// view command
// =============================================================================

// viewCommand renders a workflow file and opens it in a scrollable pager.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		input   inputFlags
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "view (-y FILE | -j FILE | -t FILE)",
		Short: "Page through a rendered workflow in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), &input, noCache)
		},
	}

	input.register(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

func (c *CLI) runView(ctx context.Context, input *inputFlags, noCache bool) error {
	data, format, err := input.read()
	if err != nil {
		return err
	}

	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	res, err := runner.Execute(ctx, pipeline.Options{
		Input:       data,
		InputFormat: format,
		Formats:     []string{pipeline.FormatText},
	})
	if err != nil {
		return err
	}

	path, _ := input.resolve()
	model := NewViewModel(filepath.Base(path), string(res.Artifacts[pipeline.FormatText]))
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(c.out)).Run()
	return err
}
