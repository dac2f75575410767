// Package render provides the style sinks a heatmap writes colors to.
package render

import (
	"sort"
	"strconv"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// Sink writes a background color to a cell.
type Sink interface {
	SetBackground(row, col int, c models.RGB) error
}

type teeSink []Sink

// Tee returns a sink that writes every color to all sinks in order,
// stopping at the first error.
func Tee(sinks ...Sink) Sink {
	return teeSink(sinks)
}

func (t teeSink) SetBackground(row, col int, c models.RGB) error {
	for _, s := range t {
		if err := s.SetBackground(row, col, c); err != nil {
			return err
		}
	}
	return nil
}

// Recorder keeps every color it is given in memory. It is not safe for
// concurrent use.
type Recorder struct {
	rows map[int]map[int]models.RGB
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{rows: make(map[int]map[int]models.RGB)}
}

// SetBackground records c for the cell. A later color for the same cell
// replaces the earlier one.
func (r *Recorder) SetBackground(row, col int, c models.RGB) error {
	cells, ok := r.rows[row]
	if !ok {
		cells = make(map[int]models.RGB)
		r.rows[row] = cells
	}
	cells[col] = c
	return nil
}

// Color returns the color recorded for a cell.
func (r *Recorder) Color(row, col int) (models.RGB, bool) {
	c, ok := r.rows[row][col]
	return c, ok
}

// Len returns the number of colored cells.
func (r *Recorder) Len() int {
	n := 0
	for _, cells := range r.rows {
		n += len(cells)
	}
	return n
}

// RowColors returns the recorded colors ordered by row index.
func (r *Recorder) RowColors() []models.RowColors {
	idx := make([]int, 0, len(r.rows))
	for row := range r.rows {
		idx = append(idx, row)
	}
	sort.Ints(idx)

	result := make([]models.RowColors, 0, len(idx))
	for _, row := range idx {
		cells := make(map[string]string, len(r.rows[row]))
		for col, c := range r.rows[row] {
			cells[strconv.Itoa(col)] = c.Hex()
		}
		result = append(result, models.RowColors{R: row, Cells: cells})
	}
	return result
}
