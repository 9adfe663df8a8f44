package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/monkeysim/internal/scene"
)

const curveSteps = 24

func toColor(c scene.Color, opacity float64) rl.Color {
	c = c.WithAlpha(opacity)
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(p scene.Point) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

// paint draws one descriptor. Unrotated ellipses and square-cornered
// rects use the native primitives; everything else is filled as a fan of
// triangles over its outline and stroked as a polyline.
func (a *App) paint(s scene.Shape) {
	st := s.Style
	fill := toColor(st.Fill.Flat(), st.Opacity)
	stroke := toColor(st.Stroke, st.Opacity)
	hasFill := !st.Fill.IsNone()
	hasStroke := !st.Stroke.IsNone() && st.StrokeWidth > 0
	width := float32(st.StrokeWidth)

	switch {
	case s.Kind == scene.KindText:
		size := float32(s.FontSize)
		spacing := size / 10
		if s.Bold {
			spacing = size / 6
		}
		at := scene.Point{X: s.Rect.X, Y: s.Rect.Y}
		rl.DrawTextPro(a.font, s.Text, vec(at), rl.Vector2{}, float32(s.Rotation), size, spacing, fill)
		return
	case s.Kind == scene.KindLine:
		if len(s.Points) < 2 || !hasStroke {
			return
		}
		from, to := vec(s.Points[0]), vec(s.Points[1])
		rl.DrawLineEx(from, to, width, stroke)
		if st.Cap == scene.CapRound {
			rl.DrawCircleV(from, width/2, stroke)
			rl.DrawCircleV(to, width/2, stroke)
		}
		return
	case s.Kind == scene.KindEllipse && s.Rotation == 0:
		c := s.Rect.Center()
		if hasFill {
			rl.DrawEllipse(int32(c.X), int32(c.Y), float32(s.Rect.W/2), float32(s.Rect.H/2), fill)
		}
		if hasStroke {
			rl.DrawEllipseLines(int32(c.X), int32(c.Y), float32(s.Rect.W/2), float32(s.Rect.H/2), stroke)
		}
		return
	case s.Kind == scene.KindRect && s.Rotation == 0 && st.Radius == 0:
		r := rl.NewRectangle(float32(s.Rect.X), float32(s.Rect.Y), float32(s.Rect.W), float32(s.Rect.H))
		if hasFill {
			rl.DrawRectangleRec(r, fill)
		}
		if hasStroke {
			rl.DrawRectangleLinesEx(r, width, stroke)
		}
		return
	}

	outline := s.Outline(curveSteps)
	if len(outline) < 2 {
		return
	}
	closed := s.Kind != scene.KindPath || s.Path.Closed
	if hasFill && closed {
		for _, tri := range fan(outline) {
			rl.DrawTriangle(vec(tri[0]), vec(tri[1]), vec(tri[2]), fill)
		}
	}
	if hasStroke {
		for i := 1; i < len(outline); i++ {
			rl.DrawLineEx(vec(outline[i-1]), vec(outline[i]), width, stroke)
		}
		if closed {
			rl.DrawLineEx(vec(outline[len(outline)-1]), vec(outline[0]), width, stroke)
		}
		if st.Cap == scene.CapRound && !closed {
			rl.DrawCircleV(vec(outline[0]), width/2, stroke)
			rl.DrawCircleV(vec(outline[len(outline)-1]), width/2, stroke)
		}
	}
}

// fan splits a polygon into triangles around its centroid, each wound
// counter-clockwise as raylib expects.
func fan(pts []scene.Point) [][3]scene.Point {
	var c scene.Point
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Scale(1 / float64(len(pts)))

	tris := make([][3]scene.Point, 0, len(pts))
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if cross(c, a, b) > 0 {
			a, b = b, a
		}
		tris = append(tris, [3]scene.Point{c, a, b})
	}
	return tris
}

func cross(o, a, b scene.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
