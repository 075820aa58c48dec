// SPDX-License-Identifier: MIT
package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorScaleFormats(t *testing.T) {
	c := HSL(240, 10, 4)
	assert.Equal(t, "240 10% 4%", c.String())
	assert.Equal(t, "hsl(240, 10%, 4%)", c.Func())
}

func TestColorScaleClampsAndNormalizes(t *testing.T) {
	c := HSL(-30, 120, -5)
	assert.Equal(t, ColorScale{H: 330, S: 100, L: 0}, c)

	c = HSL(360, 50, 50)
	assert.Equal(t, 0, c.H)
}

func TestDerivedColorsAreNewValues(t *testing.T) {
	base := HSL(221, 83, 53)
	lighter := base.WithLightness(90)
	muted := base.WithSaturation(10)

	assert.Equal(t, 53, base.L, "original must not change")
	assert.Equal(t, ColorScale{H: 221, S: 83, L: 90}, lighter)
	assert.Equal(t, ColorScale{H: 221, S: 10, L: 53}, muted)
}

func TestColorScaleHex(t *testing.T) {
	tests := []struct {
		name  string
		color ColorScale
		want  string
	}{
		{"white", HSL(0, 0, 100), "#ffffff"},
		{"black", HSL(0, 0, 0), "#000000"},
		{"red", HSL(0, 100, 50), "#ff0000"},
		{"green", HSL(120, 100, 50), "#00ff00"},
		{"blue", HSL(240, 100, 50), "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.Hex())
		})
	}
}

func TestColorScaleRGBRange(t *testing.T) {
	for _, p := range Default().Presets.All() {
		for _, role := range p.Dark.Roles() {
			r, g, b := role.Color.RGB()
			for _, ch := range []float64{r, g, b} {
				if ch < 0 || ch > 1 {
					t.Fatalf("%s/%s: channel out of range: %v", p.Name, role.Name, ch)
				}
			}
		}
	}
}

func TestMeasureString(t *testing.T) {
	assert.Equal(t, "2px", Px(2).String())
	assert.Equal(t, "0.15s", Sec(0.15).String())
	assert.Equal(t, "150ms", Ms(150).String())
	assert.Equal(t, "1.5rem", Rem(1.5).String())
	assert.Equal(t, "-2px", Px(-2).String())
}

func TestMeasureConversions(t *testing.T) {
	ms, err := Sec(0.2).Millis()
	require.NoError(t, err)
	assert.Equal(t, 200.0, ms)

	ms, err = Sec(0.167).Millis()
	require.NoError(t, err)
	assert.Equal(t, 167.0, ms)

	px, err := Rem(0.5).Pixels()
	require.NoError(t, err)
	assert.Equal(t, 8.0, px)

	_, err = Px(2).Millis()
	assert.ErrorIs(t, err, ErrUnitMismatch)

	_, err = Ms(100).Pixels()
	assert.ErrorIs(t, err, ErrUnitMismatch)
}
