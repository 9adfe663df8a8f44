package scale

import (
	"bytes"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/san-kum/monkeysim/internal/scene"
)

func quietController() *Controller {
	return NewController().WithLogger(zerolog.Nop())
}

func area(w, h float64) scene.Area {
	a, ok := scene.DefaultMargins().Available(scene.Viewport{Width: w, Height: h})
	if !ok {
		panic("degenerate test viewport")
	}
	return a
}

func TestAdjust_TerminatesAboveFloor(t *testing.T) {
	g := NewWithT(t)
	c := quietController()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		p := scene.Params{
			TargetHeight:    1 + rng.Float64()*500,
			ShooterDistance: 1 + rng.Float64()*500,
		}
		a := scene.Area{Width: 1 + rng.Float64()*2000, Height: 1 + rng.Float64()*2000}
		s := scene.ScaleState{X: 1 + rng.Float64()*400, Y: 1 + rng.Float64()*400}

		c.Adjust(&s, p, a)

		g.Expect(s.X).To(BeNumerically(">=", scene.MinScale))
		g.Expect(s.Y).To(BeNumerically(">=", scene.MinScale))
	}
}

func TestAdjust_ShrinkFitsOrHitsFloor(t *testing.T) {
	g := NewWithT(t)
	c := quietController()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 2000; i++ {
		p := scene.Params{TargetHeight: 1 + rng.Float64()*5, ShooterDistance: 10 + rng.Float64()*300}
		a := scene.Area{Width: 100 + rng.Float64()*800, Height: 400 + rng.Float64()*800}
		s := scene.ScaleState{X: 1 + rng.Float64()*200, Y: 1 + rng.Float64()*4}

		overflowing := p.ShooterDistance*s.X > a.Width
		xr := p.ShooterDistance * s.X / a.Width
		yr := p.TargetHeight * s.Y / a.Height
		c.Adjust(&s, p, a)

		if overflowing && xr > yr {
			fits := p.ShooterDistance*s.X <= a.Width
			g.Expect(fits || s.X == scene.MinScale).To(BeTrue(),
				"x overflow not resolved: scale=%v params=%+v area=%+v", s, p, a)
		}
	}
}

func TestAdjust_GrowIsSymmetric(t *testing.T) {
	c := quietController()
	rng := rand.New(rand.NewSource(3))

	grew := 0
	for i := 0; i < 1000; i++ {
		p := scene.Params{TargetHeight: 1 + rng.Float64()*10, ShooterDistance: 1 + rng.Float64()*10}
		before := scene.ScaleState{X: 1 + rng.Float64()*10, Y: 1 + rng.Float64()*10}
		s := before

		_, change := c.Adjust(&s, p, area(800, 600))
		if change.Reason != ReasonGrow {
			continue
		}
		grew++
		if s.X != before.X*2 || s.Y != before.Y*2 {
			t.Fatalf("grow not symmetric: before %v after %v", before, s)
		}
	}
	if grew == 0 {
		t.Fatal("grow branch never exercised")
	}
}

func TestAdjust_OnlyLargerRatioShrinks(t *testing.T) {
	c := quietController()
	p := scene.Params{TargetHeight: 100, ShooterDistance: 100}
	a := scene.Area{Width: 500, Height: 1000}

	// xRatio 4, yRatio 2: only x moves this call
	s := scene.ScaleState{X: 20, Y: 20}
	c.Adjust(&s, p, a)

	if s.X != 5 {
		t.Errorf("X = %v, want 5", s.X)
	}
	if s.Y != 20 {
		t.Errorf("Y = %v, want untouched 20", s.Y)
	}

	// the next call picks up the remaining axis
	c.Adjust(&s, p, a)
	if s.Y != 10 {
		t.Errorf("Y = %v, want 10 on second call", s.Y)
	}
}

func TestAdjust_EqualRatiosShrinkNothing(t *testing.T) {
	c := quietController()
	p := scene.Params{TargetHeight: 100, ShooterDistance: 100}
	a := scene.Area{Width: 1000, Height: 1000}
	s := scene.ScaleState{X: 20, Y: 20}

	_, change := c.Adjust(&s, p, a)

	if change.Adjusted() {
		t.Errorf("expected no change for equal ratios, got %v", change.Reason)
	}
	if s != (scene.ScaleState{X: 20, Y: 20}) {
		t.Errorf("scale moved: %v", s)
	}
}

func TestAdjust_ClampsFloor(t *testing.T) {
	c := quietController()
	s := scene.ScaleState{X: 0.25, Y: 3}
	p := scene.Params{TargetHeight: 1, ShooterDistance: 700}

	_, change := c.Adjust(&s, p, scene.Area{Width: 200, Height: 200})

	if s.X != scene.MinScale {
		t.Errorf("X = %v, want floor", s.X)
	}
	if change.Reason != ReasonClamp {
		t.Errorf("reason = %v, want clamp", change.Reason)
	}
}

func TestAdjust_ReturnsSameState(t *testing.T) {
	c := quietController()
	s := scene.DefaultScaleState()
	got, _ := c.Adjust(&s, scene.DefaultParams(), area(800, 600))
	if got != &s {
		t.Error("Adjust should return the state it was given")
	}
}

func TestAdjust_LogsAdjustments(t *testing.T) {
	var buf bytes.Buffer
	c := NewController().WithLogger(zerolog.New(&buf))

	s := scene.DefaultScaleState()
	c.Adjust(&s, scene.DefaultParams(), area(800, 600))

	g := NewWithT(t)
	g.Expect(buf.String()).To(ContainSubstring(`"reason":"grow"`))
	g.Expect(buf.String()).To(ContainSubstring(`"x_scale":40`))

	buf.Reset()
	c.Adjust(&s, scene.DefaultParams(), area(800, 600))
	g.Expect(buf.Len()).To(BeZero(), "no record expected when nothing changed")
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name     string
		scales   scene.ScaleState
		params   scene.Params
		expected scene.Bounds
	}{
		{"viewport wins", scene.ScaleState{X: 40, Y: 40}, scene.DefaultParams(), scene.Bounds{MaxX: 710.0 / 40, MaxY: 540.0 / 40}},
		{"headroom wins", scene.ScaleState{X: 40, Y: 40}, scene.Params{TargetHeight: 20, ShooterDistance: 30}, scene.Bounds{MaxX: 36, MaxY: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bounds(tt.scales, tt.params, area(800, 600))
			if got != tt.expected {
				t.Errorf("Bounds = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSweep_Hysteresis(t *testing.T) {
	c := quietController()
	p := scene.DefaultParams()
	vs := WidthRamp(300, 1500, 600, 6)

	samples := c.Sweep(scene.DefaultScaleState(), p, scene.DefaultMargins(), vs)
	if len(samples) != len(vs) {
		t.Fatalf("expected %d samples, got %d", len(vs), len(samples))
	}
	for _, s := range samples {
		if !s.Scales.Valid() {
			t.Errorf("invalid scale after %+v: %v", s.Viewport, s.Scales)
		}
	}

	first, last := samples[0], samples[len(samples)-1]
	if first.Viewport != last.Viewport {
		t.Fatalf("ramp should return to its start: %+v vs %+v", first.Viewport, last.Viewport)
	}
}

func TestSweep_SkipsDegenerate(t *testing.T) {
	c := quietController()
	vs := []scene.Viewport{{Width: 0, Height: 0}, {Width: 800, Height: 600}}

	samples := c.Sweep(scene.DefaultScaleState(), scene.DefaultParams(), scene.DefaultMargins(), vs)

	if !samples[0].Skipped || samples[0].Scales != scene.DefaultScaleState() {
		t.Errorf("degenerate viewport should be skipped: %+v", samples[0])
	}
	if samples[1].Skipped {
		t.Error("800x600 should not be skipped")
	}
}
