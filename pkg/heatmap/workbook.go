package heatmap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/parser"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/render"
)

// WorkbookOptions configures coloring of an xlsx workbook.
type WorkbookOptions struct {
	Options
	// Sheets lists the sheets to color. If empty, all sheets are colored.
	Sheets []string
	// Range restricts every sheet to an A1 range such as "B2:F20".
	// A sheet prefix ("Q1!B2:F20") applies the range to that sheet only and,
	// when Sheets is empty, colors only that sheet.
	Range string
	// UsePrintArea restricts a sheet to its first print area, if any.
	UsePrintArea bool
	// DetectTable restricts a sheet to the bounding box of its data.
	DetectTable bool
	// HeaderRows is the number of leading rows of the region left uncolored.
	HeaderRows int
}

// ColorWorkbook applies the heatmap to the sheets of the workbook at inPath
// and saves the result to outPath. An empty outPath skips saving.
// Region precedence is Range, then the print area, then table detection.
func ColorWorkbook(ctx context.Context, inPath, outPath string, opts WorkbookOptions) (*models.WorkbookData, error) {
	if _, err := os.Stat(inPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, inPath)
	}

	h, err := New(opts.Options)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	requested := opts.Sheets
	if opts.Range != "" && len(requested) == 0 {
		if sheet, _, err := parser.ParseReference(opts.Range); err == nil && sheet != "" {
			requested = []string{sheet}
		}
	}
	sheetNames, err := selectSheets(f, requested)
	if err != nil {
		return nil, err
	}

	var printAreas map[string][]models.Area
	if opts.UsePrintArea {
		printAreas = parser.ExtractPrintAreas(f)
	}

	sheets := make(map[string]models.SheetData, len(sheetNames))
	for _, sheetName := range sheetNames {
		area, err := resolveArea(f, sheetName, opts, printAreas)
		if err != nil {
			return nil, NewApplyError(sheetName, "area", err)
		}

		src := parser.NewSheetSource(f, sheetName, parser.SheetOptions{
			Area:       area,
			HeaderRows: opts.HeaderRows,
		})
		rec := render.NewRecorder()
		sink := render.Tee(render.NewXLSXSink(f, sheetName), rec)

		sh := h.withLogger(h.logger.With(zap.String("sheet", sheetName)))
		if err := sh.Apply(ctx, src, sink); err != nil {
			return nil, NewApplyError(sheetName, "rows", err)
		}

		sheets[sheetName] = models.SheetData{
			Area: area,
			Rows: rec.RowColors(),
		}
	}

	if outPath != "" {
		if err := f.SaveAs(outPath); err != nil {
			return nil, NewApplyError("", "save", err)
		}
	}

	return &models.WorkbookData{
		BookName: filepath.Base(inPath),
		Sheets:   sheets,
	}, nil
}

func selectSheets(f *excelize.File, requested []string) ([]string, error) {
	all := f.GetSheetList()
	if len(requested) == 0 {
		return all, nil
	}

	known := make(map[string]bool, len(all))
	for _, name := range all {
		known[name] = true
	}
	for _, name := range requested {
		if !known[name] {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
		}
	}
	return requested, nil
}

func resolveArea(f *excelize.File, sheetName string, opts WorkbookOptions, printAreas map[string][]models.Area) (*models.Area, error) {
	if opts.Range != "" {
		sheet, area, err := parser.ParseReference(opts.Range)
		if err != nil {
			return nil, err
		}
		if sheet == "" || sheet == sheetName {
			return area, nil
		}
	}
	if areas := printAreas[sheetName]; len(areas) > 0 {
		area := areas[0]
		return &area, nil
	}
	if opts.DetectTable {
		return parser.DetectTable(f, sheetName, parser.DefaultTableParams())
	}
	return nil, nil
}

// withLogger returns a copy of h that logs to logger.
func (h *Heatmap) withLogger(logger *zap.Logger) *Heatmap {
	cp := *h
	cp.logger = logger
	return &cp
}
