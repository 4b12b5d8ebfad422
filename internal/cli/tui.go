package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// searchPicker - Interactive search hit selection
// =============================================================================

// searchPicker is the bubbletea model for choosing one search hit.
type searchPicker struct {
	Hits     []modrinth.SearchHit
	Total    int
	Cursor   int
	Selected *modrinth.SearchHit
	Height   int
	Offset   int
}

func newSearchPicker(res *modrinth.SearchResult) searchPicker {
	return searchPicker{
		Hits:   res.Hits,
		Total:  res.TotalHits,
		Height: 15,
	}
}

func (m searchPicker) Init() tea.Cmd {
	return nil
}

func (m searchPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Hits)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Hits) == 0 {
				return m, tea.Quit
			}
			hit := m.Hits[m.Cursor]
			m.Selected = &hit
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m searchPicker) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Project"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Hits))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		h := m.Hits[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, truncate(h.Title, 36), h.ProjectType, formatCount(h.Downloads), h.Author})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Project", "Type", "Downloads", "Author").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if len(m.Hits) > 0 {
		if desc := m.Hits[m.Cursor].Description; desc != "" {
			b.WriteString("\n  " + StyleDim.Render(truncate(desc, 76)) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d of %d]", m.Cursor+1, len(m.Hits), m.Total)))

	return b.String()
}
