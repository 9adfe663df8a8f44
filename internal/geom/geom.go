package geom

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

func (p Point) IsFinite() bool { return IsFinite(p.X, p.Y) }

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Clamp limits v to [lo, hi]. The lower bound is applied first, so a
// value below lo comes back as lo even when lo > hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// IntervalFor picks the tick spacing for an axis whose largest value is maxValue.
func IntervalFor(maxValue float64) int {
	switch {
	case maxValue <= 10:
		return 1
	case maxValue <= 20:
		return 2
	case maxValue <= 50:
		return 5
	case maxValue <= 100:
		return 10
	default:
		return 20
	}
}

func Radians(deg float64) float64 { return deg * math.Pi / 180.0 }

// Direction returns the vector of the given length pointing deg degrees
// clockwise from the +x axis.
func Direction(deg, length float64) Point {
	rad := Radians(deg)
	return Point{X: length * math.Cos(rad), Y: length * math.Sin(rad)}
}

// Perpendicular returns the half-thickness offset normal to a segment
// running at deg degrees.
func Perpendicular(deg, thickness float64) Point {
	rad := Radians(deg)
	return Point{X: math.Sin(rad) * thickness / 2, Y: -math.Cos(rad) * thickness / 2}
}

// Rotate turns p about pivot by deg degrees clockwise on screen.
func Rotate(p, pivot Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	s, c := math.Sincos(Radians(deg))
	d := p.Sub(pivot)
	return Point{
		X: pivot.X + d.X*c - d.Y*s,
		Y: pivot.Y + d.X*s + d.Y*c,
	}
}

func IsFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
