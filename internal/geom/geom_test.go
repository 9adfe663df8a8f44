package geom

import (
	"math"
	"testing"
)

func TestIntervalFor(t *testing.T) {
	tests := []struct {
		max      float64
		expected int
	}{
		{8, 1},
		{10, 1},
		{15, 2},
		{20, 2},
		{45, 5},
		{80, 10},
		{100, 10},
		{150, 20},
		{1e6, 20},
	}

	for _, tt := range tests {
		if got := IntervalFor(tt.max); got != tt.expected {
			t.Errorf("IntervalFor(%v) = %d, want %d", tt.max, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"below", 10, 30, 80, 30},
		{"inside", 40, 30, 80, 40},
		{"above", 200, 30, 80, 80},
		{"edge", 30, 30, 80, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.expected)
			}
		})
	}
}

func TestDirectionAndPerpendicular(t *testing.T) {
	d := Direction(30, 10)
	if math.Abs(d.X-10*math.Sqrt(3)/2) > 1e-9 || math.Abs(d.Y-5) > 1e-9 {
		t.Errorf("Direction(30, 10) = %v", d)
	}

	// the normal must be orthogonal to the direction and half the thickness long
	p := Perpendicular(150, 4)
	dir := Direction(150, 1)
	if dot := p.X*dir.X + p.Y*dir.Y; math.Abs(dot) > 1e-9 {
		t.Errorf("perpendicular not orthogonal, dot=%v", dot)
	}
	if l := math.Hypot(p.X, p.Y); math.Abs(l-2) > 1e-9 {
		t.Errorf("perpendicular length = %v, want 2", l)
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(Pt(10, 0), Pt(0, 0), 90)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-10) > 1e-9 {
		t.Errorf("Rotate 90 = %v, want (0, 10)", got)
	}

	if got := Rotate(Pt(3, 4), Pt(1, 1), 0); got != Pt(3, 4) {
		t.Errorf("zero rotation moved point: %v", got)
	}
}

func TestCubicPoints(t *testing.T) {
	p0, c1, c2, p3 := Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)
	pts := CubicPoints(p0, c1, c2, p3, 8)

	if len(pts) != 8 {
		t.Fatalf("expected 8 points, got %d", len(pts))
	}
	if pts[len(pts)-1] != p3 {
		t.Errorf("last point = %v, want %v", pts[len(pts)-1], p3)
	}
	mid := Cubic(p0, c1, c2, p3, 0.5)
	if math.Abs(mid.X-5) > 1e-9 || math.Abs(mid.Y-7.5) > 1e-9 {
		t.Errorf("midpoint = %v, want (5, 7.5)", mid)
	}
}

func TestArcPoints(t *testing.T) {
	from, to := Pt(-1, 0), Pt(1, 0)

	up := ArcPoints(from, to, 1, 1, false, true, 16)
	down := ArcPoints(from, to, 1, 1, false, false, 16)

	if up[len(up)-1] != to || down[len(down)-1] != to {
		t.Fatal("arc must end at the target point")
	}
	// clockwise on a y-down screen passes over the top
	if up[8].Y >= 0 {
		t.Errorf("clockwise arc should bulge upward, got y=%v", up[8].Y)
	}
	if down[8].Y <= 0 {
		t.Errorf("counter-clockwise arc should bulge downward, got y=%v", down[8].Y)
	}
	for _, p := range up {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-1) > 1e-6 {
			t.Errorf("point %v off the unit circle (r=%v)", p, r)
		}
	}
}

func TestArcPoints_ScalesSmallRadii(t *testing.T) {
	pts := ArcPoints(Pt(0, 0), Pt(10, 0), 1, 1, false, true, 10)
	for _, p := range pts {
		if !p.IsFinite() {
			t.Fatalf("non-finite point %v", p)
		}
	}
}

func TestEllipsePoints(t *testing.T) {
	pts := EllipsePoints(Pt(5, 5), 4, 2, 32)
	if len(pts) != 32 {
		t.Fatalf("expected 32 points, got %d", len(pts))
	}
	for _, p := range pts {
		nx, ny := (p.X-5)/4, (p.Y-5)/2
		if math.Abs(nx*nx+ny*ny-1) > 1e-9 {
			t.Errorf("point %v not on ellipse", p)
		}
	}
}
