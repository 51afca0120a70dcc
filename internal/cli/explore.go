package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphvis/pkg/graph"
	gio "github.com/matzehuels/graphvis/pkg/io"
)

// exploreCommand creates the explore command for browsing a graph in the terminal.
func (c *CLI) exploreCommand() *cobra.Command {
	var in graphInput

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse a graph's adjacency list interactively",
		Long: `Browse a graph's adjacency list interactively.

Takes the same graph flags as the root command and opens a terminal view with
one row per node. Move with the arrow keys, press enter to jump to the
selected node's next neighbor, and q to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), in)
		},
	}
	addGraphFlags(cmd, &in)
	return cmd
}

func (c *CLI) runExplore(ctx context.Context, in graphInput) error {
	g, err := c.loadGraph(ctx, in)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(c.Stdout)}
	if in.edges == gio.StdinArg {
		// stdin held the edge list, so keys have to come from the terminal
		opts = append(opts, tea.WithInputTTY())
	} else {
		opts = append(opts, tea.WithInput(c.Stdin))
	}

	if _, err := tea.NewProgram(NewGraphModel(g), opts...).Run(); err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	return nil
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// GraphModel - Interactive adjacency browser
// =============================================================================

// GraphModel is the bubbletea model for browsing nodes and their neighbors.
type GraphModel struct {
	Graph  *graph.Graph
	Cursor int
	Height int
	Offset int
	// hop is the index of the neighbor the next enter press jumps to.
	hop int
}

// NewGraphModel creates a new graph model positioned on node 0.
func NewGraphModel(g *graph.Graph) GraphModel {
	return GraphModel{Graph: g, Height: 15}
}

func (m GraphModel) Init() tea.Cmd {
	return nil
}

func (m GraphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.Cursor - 1)
		case "down", "j":
			m.moveTo(m.Cursor + 1)
		case "home", "g":
			m.moveTo(0)
		case "end", "G":
			m.moveTo(m.Graph.NodeCount() - 1)
		case "enter", "right", "l":
			neighbors := m.Graph.Neighbors(m.Cursor)
			if len(neighbors) == 0 {
				return m, nil
			}
			target := neighbors[m.hop%len(neighbors)]
			from := m.Cursor
			m.moveTo(target)
			// continue from the node we came from on the next jump
			m.hop = indexOf(m.Graph.Neighbors(target), from) + 1
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.clampOffset()
	}
	return m, nil
}

// moveTo places the cursor on node u, clamped to the node range.
func (m *GraphModel) moveTo(u int) {
	last := m.Graph.NodeCount() - 1
	if u > last {
		u = last
	}
	if u < 0 {
		u = 0
	}
	if u != m.Cursor {
		m.hop = 0
	}
	m.Cursor = u
	m.clampOffset()
}

func (m *GraphModel) clampOffset() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

func (m GraphModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Graph Explorer"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d nodes · %d edges", m.Graph.NodeCount(), m.Graph.EdgeCount())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ follow edge  q quit"))
	b.WriteString("\n\n")

	if m.Graph.NodeCount() == 0 {
		b.WriteString(listDimStyle.Render("  (empty graph)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, m.Graph.NodeCount())

	rows := [][]string{}
	for u := m.Offset; u < end; u++ {
		cursor := "  "
		if u == m.Cursor {
			cursor = "▸ "
		}
		neighbors := m.Graph.Neighbors(u)
		parts := make([]string, len(neighbors))
		for i, v := range neighbors {
			parts[i] = strconv.Itoa(v)
		}
		list := strings.Join(parts, " ")
		if list == "" {
			list = "—"
		}
		rows = append(rows, []string{cursor, strconv.Itoa(u), strconv.Itoa(len(neighbors)), list})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Degree", "Neighbors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			u := m.Offset + row
			switch {
			case u == m.Cursor:
				return listSelectedStyle
			case m.Graph.Degree(u) == 0:
				return listDimStyle
			case col == 1:
				return StyleNumber
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Graph.NodeCount())))

	return b.String()
}
