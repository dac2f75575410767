package render

import (
	"errors"
	"testing"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

type errSink struct{}

func (errSink) SetBackground(row, col int, c models.RGB) error {
	return errors.New("boom")
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.SetBackground(3, 1, models.RGB{R: 240, G: 128, B: 128})
	rec.SetBackground(1, 0, models.RGB{R: 64, G: 192, B: 127})
	rec.SetBackground(1, 0, models.RGB{R: 240, G: 224, B: 127})

	if rec.Len() != 2 {
		t.Errorf("Expected 2 cells, got %d", rec.Len())
	}
	if c, ok := rec.Color(1, 0); !ok || c != (models.RGB{R: 240, G: 224, B: 127}) {
		t.Errorf("Expected latest color to win, got %v", c)
	}
	if _, ok := rec.Color(2, 0); ok {
		t.Error("Expected no color for unknown row")
	}

	rows := rec.RowColors()
	if len(rows) != 2 || rows[0].R != 1 || rows[1].R != 3 {
		t.Fatalf("Unexpected row order: %+v", rows)
	}
	if rows[1].Cells["1"] != "#f08080" {
		t.Errorf("Expected #f08080, got %s", rows[1].Cells["1"])
	}
}

func TestTee(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	sink := Tee(a, b)

	if err := sink.SetBackground(1, 1, models.RGB{R: 1, G: 2, B: 3}); err != nil {
		t.Fatalf("SetBackground failed: %v", err)
	}
	if a.Len() != 1 || b.Len() != 1 {
		t.Error("Expected both recorders to receive the color")
	}

	c := NewRecorder()
	if err := Tee(errSink{}, c).SetBackground(1, 1, models.RGB{}); err == nil {
		t.Error("Expected error")
	}
	if c.Len() != 0 {
		t.Error("Expected tee to stop at the first error")
	}
}
