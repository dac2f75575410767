// Package heatmap colors the numeric cells of a grid row by row with a
// three-point (min, mid, max) linear gradient.
package heatmap

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// RangeSeed selects how a row's (min, max) range is initialized.
type RangeSeed string

const (
	// SeedZero starts every row at min = max = 0. A row of positive values
	// therefore always reports min = 0, and a row of negative values max = 0.
	SeedZero RangeSeed = "zero"
	// SeedFirst starts the range at the first eligible finite value of the row.
	SeedFirst RangeSeed = "first"
)

// DefaultStripPattern removes thousands separators and currency symbols.
const DefaultStripPattern = `[,$£]`

// Default anchor colors.
var (
	DefaultColorMin = models.RGB{R: 240, G: 128, B: 128}
	DefaultColorMid = models.RGB{R: 240, G: 224, B: 127}
	DefaultColorMax = models.RGB{R: 64, G: 192, B: 127}
)

// Palette holds the three anchor colors a gradient blends between.
type Palette struct {
	Min models.RGB
	Mid models.RGB
	Max models.RGB
}

// Options configures one heatmap application.
type Options struct {
	// ExcludeColumns lists 0-based column indexes that are neither scanned
	// for the row range nor colored.
	ExcludeColumns []int
	// ColorMin is the color for the lowest value of a row.
	ColorMin models.RGB
	// ColorMid is the color for the midpoint of a row's range.
	ColorMid models.RGB
	// ColorMax is the color for the highest value of a row.
	ColorMax models.RGB
	// StripPattern is an ECMAScript regular expression; every match is
	// removed from cell text before parsing.
	StripPattern string
	// RangeSeed selects range initialization. Empty means SeedZero.
	RangeSeed RangeSeed
	// Clamp limits channels to [0,255] before a color is written.
	// If nil, defaults to true.
	Clamp *bool
	// Workers is the number of rows processed concurrently. Values below 1
	// mean sequential processing.
	Workers int
	// Logger receives progress and skipped-cell diagnostics. If nil,
	// logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns the default heatmap options.
func DefaultOptions() Options {
	return Options{
		ColorMin:     DefaultColorMin,
		ColorMid:     DefaultColorMid,
		ColorMax:     DefaultColorMax,
		StripPattern: DefaultStripPattern,
		RangeSeed:    SeedZero,
		Workers:      1,
	}
}

// Palette returns the configured anchor colors.
func (o Options) Palette() Palette {
	return Palette{Min: o.ColorMin, Mid: o.ColorMid, Max: o.ColorMax}
}

// ShouldClamp returns whether colors are clamped before being written.
func (o Options) ShouldClamp() bool {
	if o.Clamp != nil {
		return *o.Clamp
	}
	return true
}

// Validate checks the options for values that cannot be applied.
func (o Options) Validate() error {
	if _, err := compileStrip(o.StripPattern); err != nil {
		return err
	}
	switch o.RangeSeed {
	case "", SeedZero, SeedFirst:
	default:
		return fmt.Errorf("%w: unknown range seed %q", ErrInvalidOptions, o.RangeSeed)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidOptions)
	}
	for _, c := range o.ExcludeColumns {
		if c < 0 {
			return fmt.Errorf("%w: negative column index %d", ErrInvalidOptions, c)
		}
	}
	return nil
}

// compileStrip compiles an ECMAScript strip pattern. An empty pattern
// strips nothing.
func compileStrip(pattern string) (*regexp2.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("%w: strip pattern %q: %v", ErrInvalidOptions, pattern, err)
	}
	return re, nil
}
