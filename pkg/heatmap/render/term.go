package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

var (
	termCell   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	termHeader = termCell.Bold(true).Underline(true)
)

// Terminal renders rows as a text table with the colors held by rec as
// cell backgrounds. Colored cells use black text for contrast.
func Terminal(header []string, rows []models.Row, rec *Recorder) string {
	widths := columnWidths(header, rows)

	var lines []string
	if len(header) > 0 {
		cells := make([]string, len(widths))
		for col := range widths {
			text := ""
			if col < len(header) {
				text = header[col]
			}
			cells[col] = termHeader.Width(widths[col] + 2).Render(text)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	for _, row := range rows {
		cells := make([]string, len(widths))
		for col := range widths {
			cells[col] = termCell.Width(widths[col] + 2).Render("")
		}
		for _, cell := range row.Cells {
			if cell.Col >= len(widths) {
				continue
			}
			style := termCell.Width(widths[cell.Col] + 2)
			if c, ok := rec.Color(row.Index, cell.Col); ok {
				style = style.
					Background(lipgloss.Color(c.Hex())).
					Foreground(lipgloss.Color("#000000"))
			}
			cells[cell.Col] = style.Render(cell.Text)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(lines, "\n")
}

func columnWidths(header []string, rows []models.Row) []int {
	var widths []int
	grow := func(col, w int) {
		for len(widths) <= col {
			widths = append(widths, 0)
		}
		if w > widths[col] {
			widths[col] = w
		}
	}
	for col, h := range header {
		grow(col, runewidth.StringWidth(h))
	}
	for _, row := range rows {
		for _, cell := range row.Cells {
			grow(cell.Col, runewidth.StringWidth(cell.Text))
		}
	}
	return widths
}
