// Package axes draws the coordinate grid: the two axis lines, ticks with
// numeric labels, and the axis titles.
package axes

import (
	"fmt"
	"strconv"

	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	axisWidth  = 2.0
	tickWidth  = 1.0
	tickLength = 5.0
	labelSize  = 10.0
	titleSize  = 12.0

	// axes stop this far short of the top and right canvas edges
	edgeInset = 10.0

	XTitle = "Distance (m)"
	YTitle = "Height (m)"
)

// Render lays out the axes for the given bounds. Tick positions use the
// current scales, so ticks beyond the canvas edge are still emitted and
// left for the surface to clip.
func Render(b scene.Bounds, s scene.ScaleState, v scene.Viewport, m scene.Margins) []scene.Shape {
	origin := m.Origin(v)
	shapes := []scene.Shape{
		scene.Line("axis.y", origin, geom.Pt(m.X, edgeInset), scene.Black, axisWidth),
		scene.Line("axis.x", origin, geom.Pt(v.Width-edgeInset, origin.Y), scene.Black, axisWidth),
	}

	xInterval := geom.IntervalFor(b.MaxX)
	for x := xInterval; x <= int(b.MaxX); x += xInterval {
		xPos := m.X + float64(x)*s.X
		shapes = append(shapes,
			scene.Line(fmt.Sprintf("axis.x.tick.%d", x), geom.Pt(xPos, origin.Y), geom.Pt(xPos, origin.Y+tickLength), scene.Black, tickWidth),
			scene.Text(fmt.Sprintf("axis.x.label.%d", x), strconv.Itoa(x), geom.Pt(xPos-5, origin.Y+7), labelSize, false),
		)
	}

	yInterval := geom.IntervalFor(b.MaxY)
	for y := yInterval; y <= int(b.MaxY); y += yInterval {
		yPos := origin.Y - float64(y)*s.Y
		shapes = append(shapes,
			scene.Line(fmt.Sprintf("axis.y.tick.%d", y), geom.Pt(m.X, yPos), geom.Pt(m.X-tickLength, yPos), scene.Black, tickWidth),
			scene.Text(fmt.Sprintf("axis.y.label.%d", y), strconv.Itoa(y), geom.Pt(m.X-25, yPos-7), labelSize, false),
		)
	}

	shapes = append(shapes,
		scene.Text("axis.x.title", XTitle, geom.Pt(v.Width/2, v.Height-20), titleSize, true),
		scene.Text("axis.y.title", YTitle, geom.Pt(10, v.Height/2), titleSize, true).Rotated(-90),
	)
	return shapes
}
