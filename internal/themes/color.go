// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorScale is an HSL color triple. H is in degrees, S and L are percentages.
type ColorScale struct {
	H int
	S int
	L int
}

// HSL builds a ColorScale, normalizing hue into [0,360) and clamping S and L to [0,100].
func HSL(h, s, l int) ColorScale {
	return ColorScale{H: normalizeHue(h), S: clampPercent(s), L: clampPercent(l)}
}

// String returns the bare "H S% L%" form used inside hsl(var(--x)).
func (c ColorScale) String() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

// Func returns the full hsl() function form.
func (c ColorScale) Func() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// WithLightness returns a copy with a different lightness
func (c ColorScale) WithLightness(l int) ColorScale {
	return HSL(c.H, c.S, l)
}

// WithSaturation returns a copy with a different saturation
func (c ColorScale) WithSaturation(s int) ColorScale {
	return HSL(c.H, s, c.L)
}

// RGB converts to sRGB with each channel in [0,1].
func (c ColorScale) RGB() (r, g, b float64) {
	col := colorful.Hsl(float64(normalizeHue(c.H)), float64(clampPercent(c.S))/100, float64(clampPercent(c.L))/100).Clamped()
	return col.R, col.G, col.B
}

// Hex returns the #rrggbb representation
func (c ColorScale) Hex() string {
	r, g, b := c.RGB()
	return colorful.Color{R: r, G: g, B: b}.Hex()
}

func normalizeHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
