package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

func TestTerminal(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	rows := []models.Row{
		{Index: 2, Cells: []models.Cell{{Col: 0, Text: "North"}, {Col: 1, Text: "1200"}}},
		{Index: 3, Cells: []models.Cell{{Col: 0, Text: "South"}, {Col: 1, Text: "7"}}},
	}
	rec := NewRecorder()
	rec.SetBackground(2, 1, models.RGB{R: 64, G: 192, B: 127})

	out := Terminal([]string{"Region", "Jan"}, rows, rec)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{"Region", "North", "1200", "South"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	if lipgloss.Width(lines[1]) != lipgloss.Width(lines[2]) {
		t.Errorf("Expected aligned rows, got widths %d and %d", lipgloss.Width(lines[1]), lipgloss.Width(lines[2]))
	}
}

func TestColumnWidths(t *testing.T) {
	rows := []models.Row{{Cells: []models.Cell{{Col: 2, Text: "12345"}}}}
	widths := columnWidths([]string{"ab"}, rows)
	if len(widths) != 3 || widths[0] != 2 || widths[1] != 0 || widths[2] != 5 {
		t.Errorf("Unexpected widths: %v", widths)
	}
}
