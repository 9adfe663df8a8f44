package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/monkeysim/internal/geom"
)

const (
	// MinParam is the smallest accepted target height or shooter distance, in meters.
	MinParam = 1.0

	// MinScale is the legibility floor for either scale factor.
	MinScale = 1.0

	DefaultScale   = 20.0
	DefaultXMargin = 60.0
	DefaultYMargin = 40.0

	// marginFactor is how many margins are reserved on each axis.
	marginFactor = 1.5
)

type Point = geom.Point

// Params are the two user inputs, in meters.
type Params struct {
	TargetHeight    float64 `json:"target_height" yaml:"target_height"`
	ShooterDistance float64 `json:"shooter_distance" yaml:"shooter_distance"`
}

func DefaultParams() Params {
	return Params{TargetHeight: 5, ShooterDistance: 10}
}

func (p Params) Validate() error {
	if !geom.IsFinite(p.TargetHeight, p.ShooterDistance) ||
		p.TargetHeight < MinParam || p.ShooterDistance < MinParam {
		return fmt.Errorf("%w (height=%v, distance=%v)", ErrBelowMinimum, p.TargetHeight, p.ShooterDistance)
	}
	return nil
}

// Viewport is the canvas size in pixels. It can be zero or negative
// before the surface has been laid out.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Margins struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func DefaultMargins() Margins {
	return Margins{X: DefaultXMargin, Y: DefaultYMargin}
}

// Area is the region left for the scene once margins are reserved.
type Area struct {
	Width  float64
	Height float64
}

func (a Area) Degenerate() bool {
	return a.Width <= 0 || a.Height <= 0 || !geom.IsFinite(a.Width, a.Height)
}

// Available returns the drawable area of v. ok is false when nothing
// should be drawn at all.
func (m Margins) Available(v Viewport) (Area, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return Area{}, false
	}
	a := Area{
		Width:  v.Width - m.X*marginFactor,
		Height: v.Height - m.Y*marginFactor,
	}
	return a, !a.Degenerate()
}

// Origin is the pixel position of logical (0, 0): the left margin on the ground line.
func (m Margins) Origin(v Viewport) Point {
	return Point{X: m.X, Y: v.Height - m.Y}
}

// ScaleState is pixels-per-meter on each axis. It is the only piece of
// the pipeline that lives longer than one redraw.
type ScaleState struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func DefaultScaleState() ScaleState {
	return ScaleState{X: DefaultScale, Y: DefaultScale}
}

func (s ScaleState) Valid() bool {
	return s.X >= MinScale && s.Y >= MinScale && geom.IsFinite(s.X, s.Y)
}

func (s ScaleState) Min() float64 { return math.Min(s.X, s.Y) }

func (s ScaleState) String() string {
	return fmt.Sprintf("X=%g, Y=%g", s.X, s.Y)
}

// Bounds are the largest distance and height, in meters, the axes show.
type Bounds struct {
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}
