package scale

import "github.com/san-kum/monkeysim/internal/scene"

// Sample is the scale reached after one viewport in a sweep.
type Sample struct {
	Viewport scene.Viewport
	Scales   scene.ScaleState
	Skipped  bool
}

// Sweep replays a sequence of viewport sizes through one persistent
// state, the way a user dragging a window edge would, and records the
// scale after each step. Degenerate viewports leave the state untouched.
func (c *Controller) Sweep(start scene.ScaleState, p scene.Params, m scene.Margins, viewports []scene.Viewport) []Sample {
	state := start
	samples := make([]Sample, 0, len(viewports))
	for _, v := range viewports {
		area, ok := m.Available(v)
		if !ok {
			samples = append(samples, Sample{Viewport: v, Scales: state, Skipped: true})
			continue
		}
		c.Adjust(&state, p, area)
		samples = append(samples, Sample{Viewport: v, Scales: state})
	}
	return samples
}

// WidthRamp returns viewports of a fixed height whose width runs from
// `from` to `to` and back again in `steps` increments each way.
func WidthRamp(from, to, height float64, steps int) []scene.Viewport {
	if steps < 1 {
		steps = 1
	}
	vs := make([]scene.Viewport, 0, 2*steps+1)
	for i := 0; i <= steps; i++ {
		w := from + (to-from)*float64(i)/float64(steps)
		vs = append(vs, scene.Viewport{Width: w, Height: height})
	}
	for i := steps - 1; i >= 0; i-- {
		w := from + (to-from)*float64(i)/float64(steps)
		vs = append(vs, scene.Viewport{Width: w, Height: height})
	}
	return vs
}
