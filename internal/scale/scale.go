package scale

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	shrinkFactor = 2.0
	growFactor   = 2.0

	// growThreshold is the fraction of the area both axes must stay
	// under before the scene is zoomed in.
	growThreshold = 0.4

	// headroom keeps the target clear of the top and right edges.
	headroom = 1.2
)

type Reason int

const (
	ReasonNone Reason = iota
	ReasonShrink
	ReasonGrow
	ReasonClamp
)

func (r Reason) String() string {
	switch r {
	case ReasonShrink:
		return "shrink"
	case ReasonGrow:
		return "grow"
	case ReasonClamp:
		return "clamp"
	default:
		return "none"
	}
}

// Change describes what one Adjust call did.
type Change struct {
	Reason Reason
	Before scene.ScaleState
	After  scene.ScaleState
}

func (c Change) Adjusted() bool { return c.Reason != ReasonNone }

type Controller struct {
	log zerolog.Logger
}

func NewController() *Controller {
	return &Controller{log: log.With().Str("module", "scale").Logger()}
}

// WithLogger returns a copy of the controller that reports to l.
func (c *Controller) WithLogger(l zerolog.Logger) *Controller {
	return &Controller{log: l.With().Str("module", "scale").Logger()}
}

// Adjust updates cur in place for a scene of size p drawn into area and
// returns it. area must not be degenerate; callers check
// scene.Margins.Available first.
//
// Only one axis is shrunk per call, the one with the larger overflow
// ratio. When both ratios are equal neither is touched.
func (c *Controller) Adjust(cur *scene.ScaleState, p scene.Params, area scene.Area) (*scene.ScaleState, Change) {
	change := Change{Before: *cur}
	d, h := p.ShooterDistance, p.TargetHeight

	if d*cur.X > area.Width || h*cur.Y > area.Height {
		xRatio := d * cur.X / area.Width
		yRatio := h * cur.Y / area.Height

		if xRatio > yRatio && xRatio > 1.0 {
			for d*cur.X > area.Width && cur.X > scene.MinScale {
				cur.X /= shrinkFactor
				change.Reason = ReasonShrink
			}
		}
		if yRatio > xRatio && yRatio > 1.0 {
			for h*cur.Y > area.Height && cur.Y > scene.MinScale {
				cur.Y /= shrinkFactor
				change.Reason = ReasonShrink
			}
		}
	} else if d*cur.X < area.Width*growThreshold && h*cur.Y < area.Height*growThreshold {
		cur.X *= growFactor
		cur.Y *= growFactor
		change.Reason = ReasonGrow
	}

	if cur.X < scene.MinScale {
		cur.X = scene.MinScale
		if change.Reason == ReasonNone {
			change.Reason = ReasonClamp
		}
	}
	if cur.Y < scene.MinScale {
		cur.Y = scene.MinScale
		if change.Reason == ReasonNone {
			change.Reason = ReasonClamp
		}
	}

	change.After = *cur
	if change.Adjusted() {
		c.log.Info().
			Float64("x_scale", cur.X).
			Float64("y_scale", cur.Y).
			Stringer("reason", change.Reason).
			Msgf("adjusted scale to: %s", cur)
	}
	return cur, change
}

// Bounds returns the largest distance and height the axes must show.
func Bounds(s scene.ScaleState, p scene.Params, area scene.Area) scene.Bounds {
	return scene.Bounds{
		MaxX: math.Max(p.ShooterDistance*headroom, area.Width/s.X),
		MaxY: math.Max(p.TargetHeight*headroom, area.Height/s.Y),
	}
}
