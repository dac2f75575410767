package parser

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// CSVTable is a CSV file held in memory. It is a row source whose rows
// are numbered from 1 including header rows.
type CSVTable struct {
	Header []string
	rows   []models.Row
}

// ReadCSV reads all records from r. The first headerRows records are kept
// as the header (the last one wins) and are not returned by Rows.
func ReadCSV(r io.Reader, headerRows int) (*CSVTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	t := &CSVTable{}
	for i, rec := range records {
		if i < headerRows {
			t.Header = rec
			continue
		}
		row := models.Row{Index: i + 1, Cells: make([]models.Cell, len(rec))}
		for col, text := range rec {
			row.Cells[col] = models.Cell{Col: col, Text: text}
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// Rows returns the data rows.
func (t *CSVTable) Rows(ctx context.Context) ([]models.Row, error) {
	return t.rows, ctx.Err()
}
