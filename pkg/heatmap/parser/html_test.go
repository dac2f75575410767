package parser

import (
	"context"
	"strings"
	"testing"
)

const testHTML = `<html><body>
<table>
  <thead><tr><th>Name</th><th>Q1</th><th>Q2</th></tr></thead>
  <tbody>
    <tr><th>North</th><td>$1,200</td><td><b>900</b></td></tr>
    <tr><td>South</td><td>15</td><td>30</td></tr>
  </tbody>
</table>
<table>
  <tr><td>7</td></tr>
</table>
</body></html>`

func TestParseHTML(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(testHTML))
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	rows, err := doc.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}

	// thead is skipped; the second table gets an implied tbody
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if len(first.Cells) != 2 {
		t.Fatalf("Expected 2 td cells, got %d", len(first.Cells))
	}
	if first.Cells[0].Col != 1 || first.Cells[0].Text != "$1,200" {
		t.Errorf("Unexpected cell: %+v", first.Cells[0])
	}
	if first.Cells[1].Col != 2 || first.Cells[1].Text != "900" {
		t.Errorf("Unexpected cell: %+v", first.Cells[1])
	}
	if rows[2].Index != 3 || rows[2].Cells[0].Text != "7" {
		t.Errorf("Unexpected row: %+v", rows[2])
	}

	if doc.Cell(1, 0) != nil {
		t.Error("Expected th cell to be unaddressable")
	}
	if n := doc.Cell(2, 2); n == nil || nodeText(n) != "30" {
		t.Error("Expected td at row 2 col 2")
	}
}

func TestParseHTMLNestedTable(t *testing.T) {
	src := `<table><tbody><tr><td>1<table><tr><td>99</td></tr></table></td><td>2</td></tr></tbody></table>`
	doc, err := ParseHTML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}
	rows, _ := doc.Rows(context.Background())
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Cells[0].Text != "199" {
		t.Errorf("Expected outer cell text to include nested text, got %q", rows[0].Cells[0].Text)
	}
}
