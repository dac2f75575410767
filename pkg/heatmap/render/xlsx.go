package render

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

type styleKey struct {
	base int
	hex  string
}

// XLSXSink writes colors as solid pattern fills on a worksheet. The cell's
// existing font, border, alignment and number format are kept.
type XLSXSink struct {
	f      *excelize.File
	sheet  string
	styles map[styleKey]int
}

// NewXLSXSink creates a sink for sheetName. Rows are 1-based sheet rows and
// columns 0-based sheet columns.
func NewXLSXSink(f *excelize.File, sheetName string) *XLSXSink {
	return &XLSXSink{
		f:      f,
		sheet:  sheetName,
		styles: make(map[styleKey]int),
	}
}

// SetBackground fills the cell with c.
func (s *XLSXSink) SetBackground(row, col int, c models.RGB) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return err
	}

	base, err := s.f.GetCellStyle(s.sheet, cell)
	if err != nil {
		return fmt.Errorf("failed to read style of %s: %w", cell, err)
	}

	key := styleKey{base: base, hex: strings.ToUpper(strings.TrimPrefix(c.Hex(), "#"))}
	id, ok := s.styles[key]
	if !ok {
		id, err = s.newFillStyle(base, key.hex)
		if err != nil {
			return fmt.Errorf("failed to create fill for %s: %w", cell, err)
		}
		s.styles[key] = id
	}

	return s.f.SetCellStyle(s.sheet, cell, cell, id)
}

func (s *XLSXSink) newFillStyle(base int, hex string) (int, error) {
	style := &excelize.Style{}
	if base != 0 {
		existing, err := s.f.GetStyle(base)
		if err != nil {
			return 0, err
		}
		if existing != nil {
			style = existing
		}
	}
	style.Fill = excelize.Fill{
		Type:    "pattern",
		Pattern: 1,
		Color:   []string{hex},
	}
	return s.f.NewStyle(style)
}
