package scene

import (
	"errors"
	"math"
	"testing"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		valid  bool
	}{
		{"default", DefaultParams(), true},
		{"minimum", Params{TargetHeight: 1, ShooterDistance: 1}, true},
		{"short", Params{TargetHeight: 0.5, ShooterDistance: 10}, false},
		{"close", Params{TargetHeight: 5, ShooterDistance: 0.99}, false},
		{"NaN", Params{TargetHeight: math.NaN(), ShooterDistance: 10}, false},
		{"Inf", Params{TargetHeight: 5, ShooterDistance: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrBelowMinimum) {
				t.Errorf("expected ErrBelowMinimum, got %v", err)
			}
		})
	}
}

func TestMargins_Available(t *testing.T) {
	m := DefaultMargins()

	a, ok := m.Available(Viewport{Width: 800, Height: 600})
	if !ok {
		t.Fatal("800x600 should be drawable")
	}
	if a.Width != 710 || a.Height != 540 {
		t.Errorf("area = %+v, want 710x540", a)
	}

	for _, v := range []Viewport{{0, 0}, {-5, 600}, {800, 0}, {90, 600}, {800, 60}} {
		if _, ok := m.Available(v); ok {
			t.Errorf("viewport %+v should be degenerate", v)
		}
	}
}

func TestColor(t *testing.T) {
	if got := SaddleBrown.Hex(); got != "#8b4513" {
		t.Errorf("Hex() = %s", got)
	}
	if !None.IsNone() || Black.IsNone() {
		t.Error("IsNone mismatch")
	}
	if got := White.WithAlpha(0.5).A; got != 128 {
		t.Errorf("WithAlpha(0.5).A = %d, want 128", got)
	}
}

func TestPaint_Flat(t *testing.T) {
	p := Paint{Gradient: &Gradient{Stops: []Stop{
		{Offset: 0, Color: RGB(0, 0, 0)},
		{Offset: 1, Color: RGB(100, 200, 50)},
	}}}
	if got := p.Flat(); got != RGB(50, 100, 25) {
		t.Errorf("Flat() = %+v", got)
	}
	if p.IsNone() {
		t.Error("gradient paint reported as none")
	}
}

func TestPathFlatten(t *testing.T) {
	p := NewPath(Point{X: 0, Y: 0}).
		LineTo(Point{X: 10, Y: 0}).
		CubicTo(Point{X: 10, Y: 5}, Point{X: 5, Y: 10}, Point{X: 0, Y: 10}).
		Close().
		Build()

	pts := p.Flatten(4)
	if len(pts) != 1+1+4 {
		t.Fatalf("expected 6 points, got %d", len(pts))
	}
	if pts[len(pts)-1] != (Point{X: 0, Y: 10}) {
		t.Errorf("last point = %v", pts[len(pts)-1])
	}
	if !p.Closed {
		t.Error("path should be closed")
	}
}

func TestShape_RotatedOutline(t *testing.T) {
	s := Rectangle("r", Rect{X: 10, Y: 10, W: 10, H: 2}, Filled(Black, 1)).Rotated(90)

	out := s.Outline(0)
	if len(out) != 4 {
		t.Fatalf("expected 4 corners, got %d", len(out))
	}
	// the top-right corner swings below the pivot
	if math.Abs(out[1].X-10) > 1e-9 || math.Abs(out[1].Y-20) > 1e-9 {
		t.Errorf("rotated corner = %v, want (10, 20)", out[1])
	}
	if out[0] != (Point{X: 10, Y: 10}) {
		t.Errorf("pivot corner moved: %v", out[0])
	}
}

func TestShape_Valid(t *testing.T) {
	good := Line("l", Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, Black, 1)
	if !good.Valid() {
		t.Error("line should be valid")
	}

	bad := Ellipse("e", Rect{W: -1, H: 2}, Filled(Black, 1))
	if bad.Valid() {
		t.Error("negative width should be invalid")
	}

	nan := Line("l", Point{X: math.NaN()}, Point{}, Black, 1)
	if nan.Valid() {
		t.Error("NaN point should be invalid")
	}

	empty := PathShape("p", Path{}, Filled(Black, 1))
	if empty.Valid() {
		t.Error("path without segments should be invalid")
	}
}

func TestColor_Text(t *testing.T) {
	tests := []struct {
		c    Color
		text string
	}{
		{None, "none"},
		{Brown, "#a52a2a"},
		{Color{R: 1, G: 2, B: 3, A: 128}, "#01020380"},
	}
	for _, tt := range tests {
		b, err := tt.c.MarshalText()
		if err != nil || string(b) != tt.text {
			t.Errorf("MarshalText(%v) = %q, %v; want %q", tt.c, b, err, tt.text)
		}
		var back Color
		if err := back.UnmarshalText(b); err != nil || back != tt.c {
			t.Errorf("UnmarshalText(%q) = %v, %v", b, back, err)
		}
	}

	var c Color
	if err := c.UnmarshalText([]byte("red")); err == nil {
		t.Error("expected error for a color name")
	}
}

func TestKind_Text(t *testing.T) {
	b, _ := KindEllipse.MarshalText()
	if string(b) != "ellipse" {
		t.Errorf("got %q", b)
	}
	b, _ = CapRound.MarshalText()
	if string(b) != "round" {
		t.Errorf("got %q", b)
	}
}

func TestRect_Rounded(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 20}
	pts := r.Rounded(5, 16)
	if len(pts) != 16 {
		t.Fatalf("expected 16 points, got %d", len(pts))
	}
	for _, p := range pts {
		if p.X < -1e-9 || p.X > 10+1e-9 || p.Y < -1e-9 || p.Y > 20+1e-9 {
			t.Errorf("point %+v outside rect", p)
		}
	}
	// first corner starts on the left edge and ends on the top edge
	if math.Abs(pts[0].X) > 1e-9 || math.Abs(pts[0].Y-5) > 1e-9 {
		t.Errorf("first point = %+v", pts[0])
	}
	if math.Abs(pts[3].X-5) > 1e-9 || math.Abs(pts[3].Y) > 1e-9 {
		t.Errorf("fourth point = %+v", pts[3])
	}
}
