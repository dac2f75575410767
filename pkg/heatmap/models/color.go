package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color triple. Channels are not bounded to [0,255] by
// construction; use Clamped before handing the color to a renderer.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Clamped returns the color with every channel limited to [0,255].
func (c RGB) Clamped() RGB {
	return RGB{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B)}
}

// Hex returns the color as "#rrggbb". Channels are clamped first.
func (c RGB) Hex() string {
	cc := c.Clamped()
	return colorful.Color{
		R: float64(cc.R) / 255,
		G: float64(cc.G) / 255,
		B: float64(cc.B) / 255,
	}.Hex()
}

// CSS returns the color as a CSS rgb() function.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.CSS()
}

// ParseRGB parses "#rrggbb", "#rgb" or "r,g,b" into an RGB.
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := col.RGB255()
		return RGB{R: int(r), G: int(g), B: int(b)}, nil
	}

	s = strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("invalid color %q: want #rrggbb or r,g,b", s)
	}
	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		ch[i] = v
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
