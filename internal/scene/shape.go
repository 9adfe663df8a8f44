package scene

import (
	"math"

	"github.com/san-kum/monkeysim/internal/geom"
)

type Kind int

const (
	KindLine Kind = iota
	KindEllipse
	KindRect
	KindPath
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindEllipse:
		return "ellipse"
	case KindRect:
		return "rect"
	case KindPath:
		return "path"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

type LineCap int

const (
	CapFlat LineCap = iota
	CapRound
)

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

func (r Rect) Corners() []Point {
	return []Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// Rounded returns the outline of r with corners of the given radius,
// clockwise from the top-left, using about steps points in total.
func (r Rect) Rounded(radius float64, steps int) []Point {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	n := steps / 4
	if n < 2 {
		n = 2
	}
	corners := []struct {
		c     Point
		start float64
	}{
		{Point{X: r.X + radius, Y: r.Y + radius}, 180},
		{Point{X: r.X + r.W - radius, Y: r.Y + radius}, 270},
		{Point{X: r.X + r.W - radius, Y: r.Y + r.H - radius}, 0},
		{Point{X: r.X + radius, Y: r.Y + r.H - radius}, 90},
	}
	pts := make([]Point, 0, 4*n)
	for _, k := range corners {
		for i := 0; i < n; i++ {
			a := geom.Radians(k.start + 90*float64(i)/float64(n-1))
			pts = append(pts, Point{X: k.c.X + radius*math.Cos(a), Y: k.c.Y + radius*math.Sin(a)})
		}
	}
	return pts
}

type Style struct {
	Fill        Paint   `json:"fill"`
	Stroke      Color   `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
	Opacity     float64 `json:"opacity"`
	Cap         LineCap `json:"cap,omitempty"`
	// Radius rounds the corners of a rect.
	Radius float64 `json:"radius,omitempty"`
}

// Filled returns an opaque style with a fill and a black outline.
func Filled(fill Color, strokeWidth float64) Style {
	return Style{Fill: Solid(fill), Stroke: Black, StrokeWidth: strokeWidth, Opacity: 1}
}

// FillOnly returns a style with no outline.
func FillOnly(fill Color) Style {
	return Style{Fill: Solid(fill), Opacity: 1}
}

// Stroked returns an unfilled style.
func Stroked(stroke Color, width float64) Style {
	return Style{Stroke: stroke, StrokeWidth: width, Opacity: 1}
}

// Shape is one drawable primitive with every coordinate resolved to
// pixels. Which geometry fields apply depends on Kind:
//
//	line     Points[0] -> Points[1]
//	ellipse  inscribed in Rect
//	rect     Rect
//	path     Path
//	text     Text drawn with its top-left corner at Rect.X, Rect.Y
//
// A non-zero Rotation turns the shape clockwise by that many degrees
// about Pivot.
type Shape struct {
	Kind     Kind    `json:"kind"`
	Name     string  `json:"name"`
	Points   []Point `json:"points,omitempty"`
	Rect     Rect    `json:"rect"`
	Path     Path    `json:"path"`
	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	Bold     bool    `json:"bold,omitempty"`
	Style    Style   `json:"style"`
	Rotation float64 `json:"rotation,omitempty"`
	Pivot    Point   `json:"pivot"`
}

func Line(name string, from, to Point, stroke Color, width float64) Shape {
	return Shape{Kind: KindLine, Name: name, Points: []Point{from, to}, Style: Stroked(stroke, width)}
}

func Ellipse(name string, r Rect, style Style) Shape {
	return Shape{Kind: KindEllipse, Name: name, Rect: r, Style: style}
}

func Rectangle(name string, r Rect, style Style) Shape {
	return Shape{Kind: KindRect, Name: name, Rect: r, Style: style}
}

func PathShape(name string, p Path, style Style) Shape {
	return Shape{Kind: KindPath, Name: name, Path: p, Style: style}
}

func Text(name, text string, at Point, size float64, bold bool) Shape {
	return Shape{
		Kind:     KindText,
		Name:     name,
		Rect:     Rect{X: at.X, Y: at.Y},
		Text:     text,
		FontSize: size,
		Bold:     bold,
		Style:    Style{Fill: Solid(Black), Opacity: 1},
	}
}

// Rotated returns a copy of s turned deg degrees about its own top-left
// corner, the default origin of a render transform.
func (s Shape) Rotated(deg float64) Shape {
	s.Rotation = deg
	s.Pivot = Point{X: s.Rect.X, Y: s.Rect.Y}
	return s
}

// RotatedAbout returns a copy of s turned deg degrees about pivot.
func (s Shape) RotatedAbout(deg float64, pivot Point) Shape {
	s.Rotation = deg
	s.Pivot = pivot
	return s
}

// Outline returns the shape's boundary in absolute pixels with rotation
// applied, flattening curves with steps points. Lines and text return
// their anchor points.
func (s Shape) Outline(steps int) []Point {
	var pts []Point
	switch s.Kind {
	case KindLine:
		pts = append(pts, s.Points...)
	case KindEllipse:
		pts = geom.EllipsePoints(s.Rect.Center(), s.Rect.W/2, s.Rect.H/2, steps)
	case KindRect:
		if s.Style.Radius > 0 {
			pts = s.Rect.Rounded(s.Style.Radius, steps)
		} else {
			pts = s.Rect.Corners()
		}
	case KindPath:
		pts = s.Path.Flatten(steps)
	case KindText:
		pts = []Point{{X: s.Rect.X, Y: s.Rect.Y}}
	}
	if s.Rotation == 0 {
		return pts
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = geom.Rotate(p, s.Pivot, s.Rotation)
	}
	return out
}

// Valid reports whether every coordinate is finite and every size non-negative.
func (s Shape) Valid() bool {
	if !geom.IsFinite(s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, s.Rotation, s.Pivot.X, s.Pivot.Y, s.Style.StrokeWidth) {
		return false
	}
	if s.Rect.W < 0 || s.Rect.H < 0 || s.Style.StrokeWidth < 0 {
		return false
	}
	if s.Style.Opacity < 0 || s.Style.Opacity > 1 {
		return false
	}
	var pts []Point
	switch s.Kind {
	case KindLine:
		if len(s.Points) != 2 {
			return false
		}
		pts = s.Points
	case KindPath:
		if len(s.Path.Segments) == 0 {
			return false
		}
		pts = s.Path.points()
	}
	for _, p := range pts {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// BoundingBox returns the axis-aligned box around the shape's outline.
func (s Shape) BoundingBox() Rect {
	pts := s.Outline(24)
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
