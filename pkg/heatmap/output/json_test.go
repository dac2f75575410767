package output

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookData{
		BookName: "sales.xlsx",
		Sheets: map[string]models.SheetData{
			"Q1": {
				Area: &models.Area{R1: 2, C1: 1, R2: 3, C2: 4},
				Rows: []models.RowColors{
					{R: 2, Cells: map[string]string{"1": "#f08080", "3": "#40c07f"}},
				},
			},
		},
	}

	data, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if strings.Contains(string(data), "\n") {
		t.Errorf("compact output contains newlines: %s", data)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["book_name"] != "sales.xlsx" {
		t.Errorf("book_name = %v, expected sales.xlsx", decoded["book_name"])
	}
	sheets := decoded["sheets"].(map[string]any)
	q1 := sheets["Q1"].(map[string]any)
	rows := q1["rows"].([]any)
	cells := rows[0].(map[string]any)["cells"].(map[string]any)
	if cells["3"] != "#40c07f" {
		t.Errorf("cell 3 = %v, expected #40c07f", cells["3"])
	}
}

func TestSheetToJSONPretty(t *testing.T) {
	data, err := SheetToJSON(&models.SheetData{}, true)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("empty sheet = %s, expected {}", data)
	}
}
