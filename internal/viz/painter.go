package viz

import (
	"math"

	"github.com/san-kum/monkeysim/internal/scene"
)

// DotPixels is how many scene pixels one braille dot covers. The
// terminal preview lays the scene out in a virtual viewport of this
// resolution so figures keep their proportions.
const DotPixels = 4.0

const outlineSteps = 16

// VirtualViewport is the scene viewport matching a canvas of c.
func VirtualViewport(c *Canvas) scene.Viewport {
	w, h := c.Dots()
	return scene.Viewport{Width: float64(w) * DotPixels, Height: float64(h) * DotPixels}
}

// Paint draws the outline of every shape. Text cannot be drawn in dots
// and is left to the surrounding panel.
func Paint(c *Canvas, shapes []scene.Shape) {
	for _, s := range shapes {
		if s.Kind == scene.KindText {
			continue
		}
		outline := s.Outline(outlineSteps)
		pts := make([][2]int, len(outline))
		for i, p := range outline {
			pts[i] = [2]int{toDot(p.X), toDot(p.Y)}
		}
		closed := s.Kind == scene.KindEllipse || s.Kind == scene.KindRect ||
			(s.Kind == scene.KindPath && s.Path.Closed)
		c.DrawPolyline(pts, closed)
	}
}

func toDot(px float64) int {
	return int(math.Round(px / DotPixels))
}
