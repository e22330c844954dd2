// Package color provides the palettes used to colour root basins.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

// Fixed colours for pixels that belong to no basin or sit on a boundary.
var (
	Black      = RGB{0, 0, 0}
	Background = RGB{18, 20, 28}
	Edge       = RGB{6, 6, 10}
)

// Wheel assigns each of n roots an evenly spaced hue.
type Wheel struct {
	n          int
	Saturation float64
	Value      float64
	Offset     float64 // hue of root 0 in degrees
}

// NewWheel returns a wheel for n roots.
func NewWheel(n int) Wheel {
	return Wheel{n: n, Saturation: 0.6, Value: 0.95, Offset: 200}
}

// Angle returns the angle of root i on the wheel, in radians.
func (w Wheel) Angle(i int) float64 {
	return float64(i) / float64(w.n) * 2 * math.Pi
}

// Color returns the base colour of root i.
func (w Wheel) Color(i int) colorful.Color {
	h := math.Mod(w.Offset+w.Angle(i)*180/math.Pi, 360)
	return colorful.Hsv(h, w.Saturation, w.Value)
}

// Flat returns the unshaded wheel colour of root i:
// red fixed at 200, green and blue following sin and -cos of the angle.
func (w Wheel) Flat(i int) RGB {
	a := w.Angle(i)
	return RGB{
		R: 200,
		G: uint8((math.Sin(a)+1)/2*150 + 50),
		B: uint8((-math.Cos(a)+1)/2*150 + 50),
	}
}

// FromColorful converts a colorful colour to RGB, clamping out-of-gamut values.
func FromColorful(c colorful.Color) RGB {
	return RGB{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
	}
}

// Colorful converts c to a colorful colour.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Shade scales c by factor in linear light and returns the sRGB result.
// factor is clamped to [0, 1].
func Shade(c colorful.Color, factor float64) RGB {
	factor = math.Max(0, math.Min(1, factor))
	r, g, b := c.LinearRgb()
	return FromColorful(colorful.LinearRgb(r*factor, g*factor, b*factor))
}

// Mix blends a towards b by t in [0, 1], interpolating in CIE L*a*b*.
func Mix(a, b RGB, t float64) RGB {
	t = math.Max(0, math.Min(1, t))
	return FromColorful(a.Colorful().BlendLab(b.Colorful(), t).Clamped())
}

// clampAndRound clamps a float64 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
