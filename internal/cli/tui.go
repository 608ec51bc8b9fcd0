package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aigkit/pkg/aig"
	"github.com/matzehuels/aigkit/pkg/aig/report"
	apperr "github.com/matzehuels/aigkit/pkg/errors"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	listPaneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	listTitleStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// browseCommand creates the browse command, an interactive gate browser.
func (c *CLI) browseCommand() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse gates and their fanin/fanout cones interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("level") {
				level = c.cfg.Report.Level
			}
			if err := apperr.ValidateLevel(level); err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			m := NewGateListModel(g, level)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "initial cone depth (default from report.level)")
	return cmd
}

// =============================================================================
// GateListModel - Interactive gate browser
// =============================================================================

// GateListModel is the bubbletea model for the gate browser. The left pane
// lists every registered gate; the right pane shows the fanin or fanout
// cone of the gate under the cursor.
type GateListModel struct {
	Graph  *aig.Graph
	Gates  []*aig.Node
	Cursor int
	Offset int
	Height int
	Level  int
	Fanout bool
}

// NewGateListModel creates a browser over all gates of g, including
// undefined placeholders.
func NewGateListModel(g *aig.Graph, level int) GateListModel {
	return GateListModel{
		Graph:  g,
		Gates:  g.Nodes(),
		Height: 15,
		Level:  level,
	}
}

func (m GateListModel) Init() tea.Cmd {
	return nil
}

func (m GateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Gates)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "tab":
			m.Fanout = !m.Fanout
		case "+", "=":
			m.Level++
		case "-":
			if m.Level > 0 {
				m.Level--
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m GateListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gates"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab fanin/fanout  +/- depth  q quit"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), " ", m.coneView()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Gates))))

	return b.String()
}

func (m GateListModel) listView() string {
	end := min(m.Offset+m.Height, len(m.Gates))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Gates[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		name := n.Name
		if name == "" {
			name = "—"
		}
		rows = append(rows, []string{cursor, fmt.Sprint(n.ID), n.Tag(), name})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Type", "Name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Gates) {
				return lipgloss.NewStyle()
			}
			style := lipgloss.NewStyle().Foreground(gateColor(m.Gates[idx]))
			if idx == m.Cursor {
				return style.Bold(true)
			}
			return style
		})

	return t.Render()
}

// coneView renders the report for the gate under the cursor.
func (m GateListModel) coneView() string {
	if len(m.Gates) == 0 {
		return listPaneStyle.Render(listDimStyle.Render("empty graph"))
	}
	n := m.Gates[m.Cursor]
	dir := "Fanin"
	if m.Fanout {
		dir = "Fanout"
	}

	var buf strings.Builder
	r := report.New(m.Graph, &buf)
	var err error
	if m.Fanout {
		err = r.Fanout(n.ID, m.Level)
	} else {
		err = r.Fanin(n.ID, m.Level)
	}
	body := strings.TrimRight(buf.String(), "\n")
	if err != nil {
		body = StyleWarning.Render(err.Error())
	}

	title := listTitleStyle.Render(fmt.Sprintf("%s of %s %d, depth %d", dir, n.Tag(), n.ID, m.Level))
	return listPaneStyle.Render(title + "\n\n" + body)
}

// gateColor colors a gate by its role after the sweep.
func gateColor(n *aig.Node) lipgloss.Color {
	switch {
	case n.Undefined():
		return colorRed
	case n.Kind == aig.KindInput:
		return colorBlue
	case n.Kind == aig.KindOutput:
		return colorGreen
	case n.Kind == aig.KindConst:
		return colorGray
	}
	return colorWhite
}
