package heatmap

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// RowSource yields the rows of a grid in display order.
type RowSource interface {
	Rows(ctx context.Context) ([]models.Row, error)
}

// StyleSink writes a background color to a cell.
type StyleSink interface {
	SetBackground(row, col int, c models.RGB) error
}

// Heatmap is a compiled, immutable set of Options.
// It is safe for concurrent use.
type Heatmap struct {
	opts    Options
	palette Palette
	strip   *regexp2.Regexp
	exclude map[int]struct{}
	logger  *zap.Logger
}

// New validates opts and compiles them into a Heatmap.
func New(opts Options) (*Heatmap, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	strip, err := compileStrip(opts.StripPattern)
	if err != nil {
		return nil, err
	}

	exclude := make(map[int]struct{}, len(opts.ExcludeColumns))
	for _, c := range opts.ExcludeColumns {
		exclude[c] = struct{}{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Heatmap{
		opts:    opts,
		palette: opts.Palette(),
		strip:   strip,
		exclude: exclude,
		logger:  logger,
	}, nil
}

// Excluded reports whether column col is excluded from the heatmap.
func (h *Heatmap) Excluded(col int) bool {
	_, ok := h.exclude[col]
	return ok
}

// Value parses cell text with the configured strip pattern.
func (h *Heatmap) Value(text string) float64 {
	return ParseValue(text, h.strip)
}

// RowRange scans the eligible cells of row and returns its (min, max).
//
// A value only lowers min when it did not raise max.
func (h *Heatmap) RowRange(row models.Row) models.Range {
	var r models.Range
	seeded := h.opts.RangeSeed != SeedFirst

	for _, cell := range row.Cells {
		if h.Excluded(cell.Col) {
			continue
		}
		v := h.Value(cell.Text)
		if !seeded {
			if math.IsNaN(v) {
				continue
			}
			r = models.Range{Min: v, Max: v}
			seeded = true
			continue
		}
		if v > r.Max {
			r.Max = v
		} else if v < r.Min {
			r.Min = v
		}
	}
	return r
}

// ProcessRow computes the color of every eligible cell of row.
// Excluded cells produce no entry.
func (h *Heatmap) ProcessRow(row models.Row) []models.CellColor {
	r := h.RowRange(row)

	colors := make([]models.CellColor, 0, len(row.Cells))
	for _, cell := range row.Cells {
		if h.Excluded(cell.Col) {
			continue
		}
		c, ok := ColorFor(h.Value(cell.Text), r, h.palette)
		colors = append(colors, models.CellColor{Col: cell.Col, Color: c, Valid: ok})
	}
	return colors
}

// Apply colors every row of src and writes the colors to sink.
//
// Cells whose color is not finite are skipped. Rows may be processed
// concurrently, but each row is written to sink as a unit under a lock, so
// sinks need not be safe for concurrent use.
func (h *Heatmap) Apply(ctx context.Context, src RowSource, sink StyleSink) error {
	rows, err := src.Rows(ctx)
	if err != nil {
		return fmt.Errorf("failed to read rows: %w", err)
	}

	workers := h.opts.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		mu      sync.Mutex
		applied int
		skipped int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, row := range rows {
		if gctx.Err() != nil {
			break
		}
		row := row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			colors := h.ProcessRow(row)

			mu.Lock()
			defer mu.Unlock()
			for _, cc := range colors {
				if !cc.Valid {
					skipped++
					h.logger.Debug("Skipping cell without a finite color",
						zap.Int("row", row.Index),
						zap.Int("col", cc.Col))
					continue
				}
				c := cc.Color
				if h.opts.ShouldClamp() {
					c = c.Clamped()
				}
				if err := sink.SetBackground(row.Index, cc.Col, c); err != nil {
					return fmt.Errorf("failed to style row %d col %d: %w", row.Index, cc.Col, err)
				}
				applied++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	h.logger.Info("Heatmap applied",
		zap.Int("rows", len(rows)),
		zap.Int("cellsColored", applied),
		zap.Int("cellsSkipped", skipped))
	return nil
}

// Apply compiles opts and colors src into sink.
func Apply(ctx context.Context, src RowSource, sink StyleSink, opts Options) error {
	h, err := New(opts)
	if err != nil {
		return err
	}
	return h.Apply(ctx, src, sink)
}
