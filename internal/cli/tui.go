package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphstab/pkg/pauli"
	"github.com/matzehuels/graphstab/pkg/stabilizer"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// defaultPageHeight is the row count before the first WindowSizeMsg.
const defaultPageHeight = 15

// =============================================================================
// Group Table
// =============================================================================

// groupTable renders rows [lo, hi) of g as a bordered table. cursor marks
// one row; pass -1 for none.
func groupTable(g *stabilizer.Group, lo, hi, cursor int) string {
	rows := make([][]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		e := g.At(i)
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(i),
			renderPhased(e.String()),
			strconv.Itoa(e.Pauli.Weight()),
			product(g, e),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Element", "Weight", "Product").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if lo+row == cursor {
				return listSelectedStyle
			}
			if col == 1 || col == 3 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// product names the generators whose product is e, e.g. "g0·g2". The
// identity is "I"; "?" means e could not be decomposed.
func product(g *stabilizer.Group, e pauli.Phased) string {
	c, ok := g.Decompose(e)
	if !ok {
		return "?"
	}
	if c == 0 {
		return "I"
	}
	var names []string
	for i := range g.Qubits() {
		if stabilizer.Selected(c, i) {
			names = append(names, "g"+strconv.Itoa(i))
		}
	}
	return strings.Join(names, "·")
}

// =============================================================================
// GroupModel - Interactive group browser
// =============================================================================

// GroupModel is the bubbletea model for browsing a stabilizer group.
type GroupModel struct {
	Group  *stabilizer.Group
	Cursor int
	Offset int
	Height int
}

// NewGroupModel creates a browser positioned on the identity.
func NewGroupModel(g *stabilizer.Group) GroupModel {
	return GroupModel{Group: g, Height: defaultPageHeight}
}

func (m GroupModel) Init() tea.Cmd {
	return nil
}

func (m GroupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := m.Group.Len() - 1
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.Cursor--
		case "down", "j":
			m.Cursor++
		case "pgup", "b":
			m.Cursor -= m.Height
		case "pgdown", "f", " ":
			m.Cursor += m.Height
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = last
		}
	case tea.WindowSizeMsg:
		// Title, help, borders, header and footer take ten lines.
		m.Height = max(msg.Height-10, 5)
	}

	m.Cursor = min(max(m.Cursor, 0), last)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m, nil
}

func (m GroupModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Stabilizer group (%d qubits, %d elements)", m.Group.Qubits(), m.Group.Len())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  pgup/pgdn page  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.Group.Len())
	b.WriteString(groupTable(m.Group, m.Offset, end, m.Cursor))
	b.WriteString("\n\n")

	if m.Group.Len() > 0 {
		e := m.Group.At(m.Cursor)
		b.WriteString("  " + renderPhased(e.String()) + listDimStyle.Render(" = "+product(m.Group, e)))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Group.Len())))

	return b.String()
}
