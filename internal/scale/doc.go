// Package scale keeps the scene legible as the canvas and the parameters change.
//
// [Controller.Adjust] nudges a persistent [scene.ScaleState] toward a scale
// where the scene fits the drawable area without looking lost in it:
//
//   - too big: the axis that overflows most is halved until it fits
//   - too small: both axes are doubled together, one step per call
//   - neither axis ever drops below [scene.MinScale]
//
// The state is hysteretic: it remembers the last scale, so a window that
// is shrunk and then restored does not necessarily return to the same zoom.
package scale
