package export

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/scene"
)

const arcSteps = 24

// Rasterize paints shapes onto a white image of size v. Gradients are
// flattened to their average color and text uses a fixed bitmap face.
func Rasterize(shapes []scene.Shape, v scene.Viewport) *image.RGBA {
	w, h := int(math.Ceil(v.Width)), int(math.Ceil(v.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(img)
	for _, s := range shapes {
		if s.Kind == scene.KindText {
			drawText(img, s)
			continue
		}
		paintShape(gc, s)
	}
	return img
}

// WritePNG encodes Rasterize(shapes, v) to w.
func WritePNG(w io.Writer, shapes []scene.Shape, v scene.Viewport) error {
	return png.Encode(w, Rasterize(shapes, v))
}

func paintShape(gc *draw2dimg.GraphicContext, s scene.Shape) {
	gc.Save()
	defer gc.Restore()

	if s.Rotation != 0 {
		gc.Translate(s.Pivot.X, s.Pivot.Y)
		gc.Rotate(geom.Radians(s.Rotation))
		gc.Translate(-s.Pivot.X, -s.Pivot.Y)
	}

	gc.BeginPath()
	switch s.Kind {
	case scene.KindLine:
		if len(s.Points) < 2 {
			return
		}
		gc.MoveTo(s.Points[0].X, s.Points[0].Y)
		gc.LineTo(s.Points[1].X, s.Points[1].Y)
	case scene.KindEllipse:
		c := s.Rect.Center()
		draw2dkit.Ellipse(gc, c.X, c.Y, s.Rect.W/2, s.Rect.H/2)
	case scene.KindRect:
		r := s.Rect
		if s.Style.Radius > 0 {
			draw2dkit.RoundedRectangle(gc, r.X, r.Y, r.X+r.W, r.Y+r.H, s.Style.Radius*2, s.Style.Radius*2)
		} else {
			draw2dkit.Rectangle(gc, r.X, r.Y, r.X+r.W, r.Y+r.H)
		}
	case scene.KindPath:
		tracePath(gc, s.Path)
	default:
		return
	}

	st := s.Style
	fill := st.Fill.Flat().WithAlpha(st.Opacity)
	stroke := st.Stroke.WithAlpha(st.Opacity)
	hasFill := s.Kind != scene.KindLine && !fill.IsNone()
	hasStroke := !stroke.IsNone() && st.StrokeWidth > 0

	if hasStroke {
		gc.SetStrokeColor(stroke.NRGBA())
		gc.SetLineWidth(st.StrokeWidth)
		if st.Cap == scene.CapRound {
			gc.SetLineCap(draw2d.RoundCap)
		} else {
			gc.SetLineCap(draw2d.ButtCap)
		}
	}
	if hasFill {
		gc.SetFillColor(fill.NRGBA())
	}

	switch {
	case hasFill && hasStroke:
		gc.FillStroke()
	case hasFill:
		gc.Fill()
	case hasStroke:
		gc.Stroke()
	}
}

func tracePath(gc *draw2dimg.GraphicContext, p scene.Path) {
	gc.MoveTo(p.Start.X, p.Start.Y)
	cur := p.Start
	for _, seg := range p.Segments {
		switch seg.Kind {
		case scene.SegCubic:
			gc.CubicCurveTo(seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.To.X, seg.To.Y)
		case scene.SegArc:
			for _, pt := range geom.ArcPoints(cur, seg.To, seg.RX, seg.RY, seg.LargeArc, seg.Clockwise, arcSteps) {
				gc.LineTo(pt.X, pt.Y)
			}
		default:
			gc.LineTo(seg.To.X, seg.To.Y)
		}
		cur = seg.To
	}
	if p.Closed {
		gc.Close()
	}
}

// drawText draws s with its top-left corner at s.Rect. Quarter turns are
// honoured by drawing into a scratch image and rotating it; other angles
// are drawn upright.
func drawText(dst *image.RGBA, s scene.Shape) {
	face := basicfont.Face7x13
	c := s.Style.Fill.Flat().WithAlpha(s.Style.Opacity)
	if c.IsNone() {
		c = scene.Black
	}

	width := font.MeasureString(face, s.Text).Ceil()
	if s.Bold {
		width++
	}
	height := face.Metrics().Height.Ceil()
	if width == 0 {
		return
	}

	label := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  label,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s.Text)
	if s.Bold {
		d.Dot = fixed.P(1, face.Metrics().Ascent.Ceil())
		d.DrawString(s.Text)
	}

	x, y := int(math.Round(s.Rect.X)), int(math.Round(s.Rect.Y))
	var src image.Image = label
	switch math.Mod(s.Rotation+360, 360) {
	case 270:
		src = rotateCCW(label)
		y -= width
	case 90:
		src = rotateCW(label)
		x -= height
	}

	b := src.Bounds()
	draw.Draw(dst, b.Add(image.Pt(x, y)), src, image.Point{}, draw.Over)
}

func rotateCCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(y, b.Dx()-1-x, src.At(x, y))
		}
	}
	return out
}

func rotateCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(b.Dy()-1-y, x, src.At(x, y))
		}
	}
	return out
}
