package parser

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// SheetOptions restricts which cells of a sheet are read.
type SheetOptions struct {
	// Area limits rows and columns. If nil, the whole used range is read.
	Area *models.Area
	// HeaderRows is the number of leading rows (counted from the top of
	// Area, or from row 1) that are skipped.
	HeaderRows int
}

// SheetSource reads the rows of one worksheet.
type SheetSource struct {
	f     *excelize.File
	sheet string
	opts  SheetOptions
}

// NewSheetSource creates a row source for sheetName.
func NewSheetSource(f *excelize.File, sheetName string, opts SheetOptions) *SheetSource {
	return &SheetSource{f: f, sheet: sheetName, opts: opts}
}

// Rows returns the non-empty rows of the sheet. Row indexes are 1-based
// sheet rows and cell columns are 0-based sheet columns (A = 0).
func (s *SheetSource) Rows(ctx context.Context) ([]models.Row, error) {
	rows, err := s.f.GetRows(s.sheet)
	if err != nil {
		return nil, err
	}
	return SelectRows(rows, s.opts), ctx.Err()
}

// SelectRows converts a string grid (as returned by GetRows) into rows,
// applying the area and header restrictions of opts.
func SelectRows(rows [][]string, opts SheetOptions) []models.Row {
	firstRow := 1
	if opts.Area != nil {
		firstRow = opts.Area.R1
	}
	firstRow += opts.HeaderRows

	var result []models.Row
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if rowNum < firstRow {
			continue
		}
		if opts.Area != nil && !opts.Area.ContainsRow(rowNum) {
			continue
		}

		cells := make([]models.Cell, 0, len(row))
		hasData := false
		for colIdx, text := range row {
			if opts.Area != nil && !opts.Area.ContainsCol(colIdx+1) {
				continue
			}
			if text != "" {
				hasData = true
			}
			cells = append(cells, models.Cell{Col: colIdx, Text: text})
		}

		if hasData {
			result = append(result, models.Row{Index: rowNum, Cells: cells})
		}
	}

	return result
}
