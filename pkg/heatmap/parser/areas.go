package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parseAreaList(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parseAreaList parses a defined-name reference such as
// 'Sheet 1'!$A$1:$D$10,'Sheet 1'!$F$1:$G$4.
func parseAreaList(ref string) (string, []models.Area) {
	var (
		sheetName string
		areas     []models.Area
	)

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sheet, area, err := ParseReference(part)
		if err != nil {
			continue
		}
		if sheetName == "" {
			sheetName = sheet
		}
		areas = append(areas, *area)
	}

	return sheetName, areas
}

// ParseReference parses an A1-style reference with an optional sheet
// prefix: "B2:F20", "$A$1:$D$10", "'Q1 Sales'!A2:D9" or a single cell "C3".
func ParseReference(ref string) (sheet string, area *models.Area, err error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 || parts[0] == "" {
		return "", nil, fmt.Errorf("invalid range %q", ref)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return sheet, &models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}
