package geom

import "math"

// Cubic evaluates the cubic bezier p0,c1,c2,p3 at t.
func Cubic(p0, c1, c2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

// CubicPoints flattens a cubic into steps points, excluding p0 and ending at p3.
func CubicPoints(p0, c1, c2, p3 Point, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps)
	for i := 1; i <= steps; i++ {
		pts = append(pts, Cubic(p0, c1, c2, p3, float64(i)/float64(steps)))
	}
	return pts
}

// ArcPoints flattens an axis-aligned elliptical arc from `from` to `to`
// (endpoint parameterisation, as in SVG paths). The result excludes
// `from` and ends at `to`. Radii too small to span the chord are scaled up.
func ArcPoints(from, to Point, rx, ry float64, largeArc, clockwise bool, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || from == to {
		return []Point{to}
	}

	x1p := (from.X - to.X) / 2
	y1p := (from.Y - to.Y) / 2

	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(math.Max(0, num/den))
	if largeArc == clockwise {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cxp + (from.X+to.X)/2
	cy := cyp + (from.Y+to.Y)/2

	theta1 := vecAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := vecAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !clockwise && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if clockwise && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	pts := make([]Point, 0, steps)
	for i := 1; i < steps; i++ {
		th := theta1 + dtheta*float64(i)/float64(steps)
		pts = append(pts, Point{X: cx + rx*math.Cos(th), Y: cy + ry*math.Sin(th)})
	}
	return append(pts, to)
}

func vecAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// EllipsePoints returns steps points around the ellipse, starting at angle 0.
func EllipsePoints(center Point, rx, ry float64, steps int) []Point {
	if steps < 3 {
		steps = 3
	}
	pts := make([]Point, steps)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = Point{X: center.X + rx*math.Cos(th), Y: center.Y + ry*math.Sin(th)}
	}
	return pts
}
