package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dominosheet/pkg/layout"
)

// Tile styles
var (
	tileBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
	tileLabelStyle = lipgloss.NewStyle().Foreground(colorGray)
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// tileLines is the terminal height of one rendered tile row: the two pip
// rows, the label and the box border.
const tileLines = 5

// =============================================================================
// PreviewModel - Page-by-page sheet pager
// =============================================================================

// PreviewModel is the bubbletea model for paging through a laid-out sheet.
type PreviewModel struct {
	Sheet  layout.Sheet
	Seed   uint64
	Page   int
	Offset int // first visible grid row
	Height int // visible grid rows
}

// NewPreviewModel creates a pager positioned on the first page.
func NewPreviewModel(s layout.Sheet, seed uint64) PreviewModel {
	return PreviewModel{Sheet: s, Seed: seed, Height: 4}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", "pgdown":
			if m.Page < len(m.Sheet.Pages)-1 {
				m.Page++
				m.Offset = 0
			}
		case "left", "h", "p", "pgup":
			if m.Page > 0 {
				m.Page--
				m.Offset = 0
			}
		case "down", "j":
			if m.Offset+m.Height < m.Sheet.Grid.Rows {
				m.Offset++
			}
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
		case "home", "g":
			m.Offset = 0
		}
	case tea.WindowSizeMsg:
		m.Height = (msg.Height - 6) / tileLines
		if m.Height < 1 {
			m.Height = 1
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Page %d/%d", m.Page+1, max(len(m.Sheet.Pages), 1))))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d×%d grid · seed %d", m.Sheet.Grid.Rows, m.Sheet.Grid.Cols, m.Seed)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ page  ↑/↓ scroll  q quit"))
	b.WriteString("\n\n")

	if m.Page >= len(m.Sheet.Pages) || len(m.Sheet.Pages[m.Page].Tiles) == 0 {
		b.WriteString(StyleWarning.Render("No tiles on this page"))
		b.WriteString("\n")
		return b.String()
	}

	tiles := m.Sheet.Pages[m.Page].Tiles
	end := min(m.Offset+m.Height, m.Sheet.Grid.Rows)
	for row := m.Offset; row < end; row++ {
		start := row * m.Sheet.Grid.Cols
		if start >= len(tiles) {
			break
		}
		rowTiles := tiles[start:min(start+m.Sheet.Grid.Cols, len(tiles))]
		boxes := make([]string, len(rowTiles))
		for i, t := range rowTiles {
			boxes[i] = renderTileBox(t)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
		b.WriteString("\n")
	}

	b.WriteString(listDimStyle.Render(fmt.Sprintf("  rows %d-%d of %d", m.Offset+1, end, m.Sheet.Grid.Rows)))
	return b.String()
}

// renderTileBox draws one tile as its two pip rows above its value.
func renderTileBox(t layout.Tile) string {
	return tileBoxStyle.Render(t.Face.String() + "\n" + tileLabelStyle.Render(fmt.Sprintf("%04d", t.Value)))
}
