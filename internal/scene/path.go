package scene

import "github.com/san-kum/monkeysim/internal/geom"

type SegmentKind int

const (
	SegLine SegmentKind = iota
	SegCubic
	SegArc
)

func (k SegmentKind) String() string {
	switch k {
	case SegLine:
		return "line"
	case SegCubic:
		return "cubic"
	case SegArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Segment continues a path from the previous end point to To.
// C1/C2 are cubic control points; RX/RY, LargeArc and Clockwise describe
// an axis-aligned elliptical arc.
type Segment struct {
	Kind      SegmentKind `json:"kind"`
	To        Point       `json:"to"`
	C1        Point       `json:"c1,omitempty"`
	C2        Point       `json:"c2,omitempty"`
	RX        float64     `json:"rx,omitempty"`
	RY        float64     `json:"ry,omitempty"`
	LargeArc  bool        `json:"large_arc,omitempty"`
	Clockwise bool        `json:"clockwise,omitempty"`
}

type Path struct {
	Start    Point     `json:"start"`
	Segments []Segment `json:"segments"`
	Closed   bool      `json:"closed"`
}

// PathBuilder assembles a Path one segment at a time.
type PathBuilder struct {
	p Path
}

func NewPath(start Point) *PathBuilder {
	return &PathBuilder{p: Path{Start: start}}
}

func (b *PathBuilder) LineTo(to Point) *PathBuilder {
	b.p.Segments = append(b.p.Segments, Segment{Kind: SegLine, To: to})
	return b
}

func (b *PathBuilder) CubicTo(c1, c2, to Point) *PathBuilder {
	b.p.Segments = append(b.p.Segments, Segment{Kind: SegCubic, C1: c1, C2: c2, To: to})
	return b
}

func (b *PathBuilder) ArcTo(to Point, rx, ry float64, largeArc, clockwise bool) *PathBuilder {
	b.p.Segments = append(b.p.Segments, Segment{
		Kind: SegArc, To: to, RX: rx, RY: ry, LargeArc: largeArc, Clockwise: clockwise,
	})
	return b
}

func (b *PathBuilder) Close() *PathBuilder {
	b.p.Closed = true
	return b
}

// Build returns the path. The builder must not be reused afterwards.
func (b *PathBuilder) Build() Path {
	return b.p
}

// Polygon builds a closed straight-edged path through pts.
func Polygon(pts ...Point) Path {
	if len(pts) == 0 {
		return Path{}
	}
	b := NewPath(pts[0])
	for _, p := range pts[1:] {
		b.LineTo(p)
	}
	return b.Close().Build()
}

// Flatten approximates the path as a polyline, using steps points per curve.
func (p Path) Flatten(steps int) []Point {
	pts := []Point{p.Start}
	cur := p.Start
	for _, s := range p.Segments {
		switch s.Kind {
		case SegCubic:
			pts = append(pts, geom.CubicPoints(cur, s.C1, s.C2, s.To, steps)...)
		case SegArc:
			pts = append(pts, geom.ArcPoints(cur, s.To, s.RX, s.RY, s.LargeArc, s.Clockwise, steps)...)
		default:
			pts = append(pts, s.To)
		}
		cur = s.To
	}
	return pts
}

func (p Path) points() []Point {
	pts := []Point{p.Start}
	for _, s := range p.Segments {
		pts = append(pts, s.To)
		if s.Kind == SegCubic {
			pts = append(pts, s.C1, s.C2)
		}
	}
	return pts
}
