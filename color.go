package quartz

import (
	"image/color"
	"strconv"

	"github.com/gogpu/quartz/raster"
)

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color struct {
	Red, Green, Blue, Alpha float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{Red: r, Green: g, Blue: b, Alpha: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{Red: r, Green: g, Blue: b, Alpha: a}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// WithAlpha returns c with its alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = a
	return c
}

// Pattern returns a solid paint source with the components of c. The
// pattern is a snapshot: it does not follow later changes to c.
func (c Color) Pattern() *raster.SolidPattern {
	return raster.NewSolidPattern(c.Red, c.Green, c.Blue, c.Alpha)
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.Red)*255 + 0.5),
		G: uint8(clamp01(c.Green)*255 + 0.5),
		B: uint8(clamp01(c.Blue)*255 + 0.5),
		A: uint8(clamp01(c.Alpha)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		Red:   float64(n.R) / 0xffff,
		Green: float64(n.G) / 0xffff,
		Blue:  float64(n.B) / 0xffff,
		Alpha: float64(n.A) / 0xffff,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	digits := 2
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
	default:
		return Black
	}

	comps := [4]float64{0, 0, 0, 1}
	for i := 0; i*digits < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return Black
		}
		if digits == 1 {
			v *= 17
		}
		comps[i] = float64(v) / 255
	}
	return RGBA(comps[0], comps[1], comps[2], comps[3])
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
