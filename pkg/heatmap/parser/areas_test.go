package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		want      models.Area
	}{
		{"B2:F20", "", models.Area{R1: 2, C1: 2, R2: 20, C2: 6}},
		{"$A$1:$D$10", "", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"'Q1 Sales'!A2:D9", "Q1 Sales", models.Area{R1: 2, C1: 1, R2: 9, C2: 4}},
		{"Data!C3", "Data", models.Area{R1: 3, C1: 3, R2: 3, C2: 3}},
		{"D9:A2", "", models.Area{R1: 2, C1: 1, R2: 9, C2: 4}},
	}

	for _, tt := range tests {
		sheet, area, err := ParseReference(tt.ref)
		if err != nil {
			t.Errorf("ParseReference(%q) failed: %v", tt.ref, err)
			continue
		}
		if sheet != tt.wantSheet || *area != tt.want {
			t.Errorf("ParseReference(%q) = %q %+v, expected %q %+v", tt.ref, sheet, *area, tt.wantSheet, tt.want)
		}
	}

	for _, bad := range []string{"", "A1:B2:C3", "nonsense", "A1:??"} {
		if _, _, err := ParseReference(bad); err == nil {
			t.Errorf("ParseReference(%q) expected error", bad)
		}
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$B$2:$D$5",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "print.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	areas := ExtractPrintAreas(f2)
	got := areas["Sheet1"]
	if len(got) != 1 {
		t.Fatalf("Expected 1 print area, got %d", len(got))
	}
	if got[0] != (models.Area{R1: 2, C1: 2, R2: 5, C2: 4}) {
		t.Errorf("Unexpected print area: %+v", got[0])
	}
}
