package scene

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha RGBA color. The zero value is transparent
// and means "none" wherever a color is optional.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

func (c Color) IsNone() bool { return c.A == 0 }

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts c to an image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithAlpha scales the alpha channel by opacity in [0, 1].
func (c Color) WithAlpha(opacity float64) Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}

// Named colors used by the figures.
var (
	None           = Color{}
	Black          = RGB(0, 0, 0)
	White          = RGB(255, 255, 255)
	Brown          = RGB(165, 42, 42)
	Bisque         = RGB(255, 228, 196)
	DarkGreen      = RGB(0, 100, 0)
	DarkOliveGreen = RGB(85, 107, 47)
	DarkGray       = RGB(169, 169, 169)
	DimGray        = RGB(105, 105, 105)
	SaddleBrown    = RGB(139, 69, 19)
	Sienna         = RGB(160, 82, 45)
)

// Stop is one color stop of a linear gradient.
type Stop struct {
	Offset float64 `json:"offset"`
	Color  Color   `json:"color"`
}

// Gradient is a linear gradient whose Start and End are relative to the
// shape's bounding box, (0,0) top-left to (1,1) bottom-right.
type Gradient struct {
	Start Point  `json:"start"`
	End   Point  `json:"end"`
	Stops []Stop `json:"stops"`
}

// Paint is a fill: a solid color, or a gradient when Gradient is set.
type Paint struct {
	Color    Color     `json:"color"`
	Gradient *Gradient `json:"gradient,omitempty"`
}

func Solid(c Color) Paint { return Paint{Color: c} }

func (p Paint) IsNone() bool { return p.Gradient == nil && p.Color.IsNone() }

// Flat returns a single color standing in for the paint, for surfaces
// that cannot draw gradients: the average of the stops.
func (p Paint) Flat() Color {
	if p.Gradient == nil || len(p.Gradient.Stops) == 0 {
		return p.Color
	}
	var r, g, b, a int
	for _, s := range p.Gradient.Stops {
		r += int(s.Color.R)
		g += int(s.Color.G)
		b += int(s.Color.B)
		a += int(s.Color.A)
	}
	n := len(p.Gradient.Stops)
	return Color{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}
