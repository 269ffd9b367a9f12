package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wordsearch/pkg/report"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// maxDetailRows caps the occurrence table under the selected word.
const maxDetailRows = 8

// =============================================================================
// ResultListModel - Interactive result browser
// =============================================================================

// ResultListModel is the bubbletea model for browsing a report.
type ResultListModel struct {
	Header   string
	Entries  []report.Entry
	Cursor   int
	Height   int
	Offset   int
	Expanded bool
}

// NewResultListModel creates a browser over r's entries.
func NewResultListModel(r report.Report) ResultListModel {
	return ResultListModel{
		Header:  r.Header(),
		Entries: r.Entries,
		Height:  15,
	}
}

func (m ResultListModel) Init() tea.Cmd {
	return nil
}

func (m ResultListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8 - maxDetailRows
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ResultListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Header))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ occurrences  q quit"))
	b.WriteString("\n\n")

	if len(m.Entries) == 0 {
		b.WriteString(listDimStyle.Render("  no words found"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Entries))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		first := "—"
		if len(e.Occurrences) > 0 {
			o := e.Occurrences[0]
			first = fmt.Sprintf("(%d,%d) %s", o.X, o.Y, o.Direction.Label())
		}
		rows = append(rows, []string{cursor, e.Word, strconv.Itoa(e.Count), first})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Word", "Count", "First").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 3 {
				return listDimStyle
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if m.Expanded {
		b.WriteString(m.detailView(m.Entries[m.Cursor]))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// detailView lists where e occurs, one line per occurrence.
func (m ResultListModel) detailView(e report.Entry) string {
	var b strings.Builder
	for i, o := range e.Occurrences {
		if i == maxDetailRows {
			fmt.Fprintf(&b, "  %s\n", listDimStyle.Render(fmt.Sprintf("… %d more", len(e.Occurrences)-i)))
			break
		}
		fmt.Fprintf(&b, "  %s %s\n",
			StyleNumber.Render(fmt.Sprintf("(%d,%d)", o.X, o.Y)),
			listDimStyle.Render(o.Direction.String()))
	}
	return b.String()
}

// runBrowse shows r in the interactive browser until the user quits.
func runBrowse(ctx context.Context, r report.Report) error {
	p := tea.NewProgram(NewResultListModel(r), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
