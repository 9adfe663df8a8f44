// Package layout runs one full redraw of the diagram: it adjusts the
// engine's scale state to the viewport, derives the ground line and the
// origin, and concatenates the axes and figures back to front.
//
// An Engine carries the scale state between redraws, which makes the
// scaling hysteretic: the same parameters can settle on different scales
// depending on the sequence of viewports seen before.
package layout
