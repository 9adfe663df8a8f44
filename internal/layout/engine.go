package layout

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/san-kum/monkeysim/internal/axes"
	"github.com/san-kum/monkeysim/internal/figures"
	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/scale"
	"github.com/san-kum/monkeysim/internal/scene"
)

const groundWidth = 2.0

// Frame is the output of one redraw. A zero Frame means nothing could be
// drawn.
type Frame struct {
	Shapes   []scene.Shape    `json:"shapes"`
	Scales   scene.ScaleState `json:"scales"`
	Bounds   scene.Bounds     `json:"bounds"`
	Origin   scene.Point      `json:"origin"`
	GroundY  float64          `json:"ground_y"`
	Adjusted bool             `json:"adjusted"`
}

func (f Frame) Empty() bool { return len(f.Shapes) == 0 }

// Find returns the first shape with the given name.
func (f Frame) Find(name string) (scene.Shape, bool) {
	for _, s := range f.Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return scene.Shape{}, false
}

type Option func(*Engine)

func WithMargins(m scene.Margins) Option {
	return func(e *Engine) { e.margins = m }
}

// WithInitialScale sets the scale state the engine starts from and
// returns to on Reset.
func WithInitialScale(s scene.ScaleState) Option {
	return func(e *Engine) { e.initial = s }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.base = l }
}

// Engine owns the scale state of one drawing surface. It is not safe for
// concurrent use.
type Engine struct {
	margins scene.Margins
	initial scene.ScaleState
	scales  scene.ScaleState
	ctrl    *scale.Controller
	base    zerolog.Logger
	log     zerolog.Logger
}

func New(opts ...Option) *Engine {
	e := &Engine{
		margins: scene.DefaultMargins(),
		initial: scene.DefaultScaleState(),
		base:    log.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.initial.Valid() {
		e.initial = scene.DefaultScaleState()
	}
	e.scales = e.initial
	e.log = e.base.With().Str("module", "layout").Logger()
	e.ctrl = scale.NewController().WithLogger(e.base)
	return e
}

func (e *Engine) Scales() scene.ScaleState { return e.scales }

func (e *Engine) Margins() scene.Margins { return e.margins }

// Reset forgets the scale history.
func (e *Engine) Reset() { e.scales = e.initial }

// Render lays out the whole diagram for p in a viewport of size v. The
// scale state is adjusted at most once per call. p must already be
// validated.
func (e *Engine) Render(p scene.Params, v scene.Viewport) Frame {
	area, ok := e.margins.Available(v)
	if !ok {
		e.log.Debug().
			Float64("width", v.Width).
			Float64("height", v.Height).
			Err(scene.ErrDegenerateViewport).
			Msg("skipping redraw")
		return Frame{}
	}

	_, change := e.ctrl.Adjust(&e.scales, p, area)
	s := e.scales

	bounds := scale.Bounds(s, p, area)
	origin := e.margins.Origin(v)
	groundY := origin.Y

	shapes := axes.Render(bounds, s, v, e.margins)
	shapes = append(shapes, scene.Line("ground",
		geom.Pt(e.margins.X, groundY),
		geom.Pt(e.margins.X+bounds.MaxX*s.X, groundY),
		scene.Brown, groundWidth))

	shapes = append(shapes, figures.Shooter(e.margins.X, groundY, s)...)

	treeX := e.margins.X + p.ShooterDistance*s.X
	tree, anchor := figures.Tree(treeX, p.TargetHeight, groundY, s)
	shapes = append(shapes, tree...)
	shapes = append(shapes, figures.Monkey(treeX, p.TargetHeight, groundY, s, anchor)...)

	return Frame{
		Shapes:   shapes,
		Scales:   s,
		Bounds:   bounds,
		Origin:   origin,
		GroundY:  groundY,
		Adjusted: change.Adjusted(),
	}
}

// Settle renders repeatedly until the scale state stops changing or
// maxPasses redraws have run, and returns the last frame. One-shot
// exporters use it so a file matches what a live window converges to.
func (e *Engine) Settle(p scene.Params, v scene.Viewport, maxPasses int) Frame {
	if maxPasses < 1 {
		maxPasses = 1
	}
	var f Frame
	for i := 0; i < maxPasses; i++ {
		f = e.Render(p, v)
		if f.Empty() || !f.Adjusted {
			break
		}
	}
	return f
}
