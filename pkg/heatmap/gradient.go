package heatmap

import (
	"math"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// ColorFor maps value to a color by its percentile position within r.
//
// Positions up to 50 blend Min to Mid; positions above 50 blend Mid to Max.
// The result is not clamped. ok is false when the color is not finite,
// which happens for a NaN value or a range with Max == Min.
func ColorFor(value float64, r models.Range, p Palette) (c models.RGB, ok bool) {
	pct := math.Round(100 * (value - r.Min) / (r.Max - r.Min))

	var lo, hi models.RGB
	var t float64
	if pct <= 50 {
		lo, hi = p.Min, p.Mid
		t = pct / 50
	} else {
		lo, hi = p.Mid, p.Max
		t = pct/50 - 1
	}

	rf := lerpChannel(lo.R, hi.R, t)
	gf := lerpChannel(lo.G, hi.G, t)
	bf := lerpChannel(lo.B, hi.B, t)
	if !isFinite(rf) || !isFinite(gf) || !isFinite(bf) {
		return models.RGB{}, false
	}
	return models.RGB{R: int(rf), G: int(gf), B: int(bf)}, true
}

// lerpChannel interpolates one channel and rounds half up.
func lerpChannel(a, b int, t float64) float64 {
	return math.Floor(float64(a) + t*float64(b-a) + 0.5)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
