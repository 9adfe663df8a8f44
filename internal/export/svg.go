package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/monkeysim/internal/scene"
)

const fontFamily = "Segoe UI, Helvetica, Arial, sans-serif"

// ShapesToSVG renders shapes back to front onto a white canvas of size v.
func ShapesToSVG(shapes []scene.Shape, v scene.Viewport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, v.Width, v.Height, v.Width, v.Height))

	var defs strings.Builder
	var body strings.Builder
	gradients := 0

	for _, s := range shapes {
		fill := "none"
		if s.Style.Fill.Gradient != nil {
			id := fmt.Sprintf("g%d", gradients)
			gradients++
			writeGradient(&defs, id, s.Style.Fill.Gradient)
			fill = "url(#" + id + ")"
		} else if !s.Style.Fill.Color.IsNone() {
			fill = s.Style.Fill.Color.Hex()
		}

		switch s.Kind {
		case scene.KindLine:
			if len(s.Points) < 2 {
				continue
			}
			a, b := s.Points[0], s.Points[1]
			body.WriteString(fmt.Sprintf(`<line id="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`,
				s.Name, a.X, a.Y, b.X, b.Y, attrs(s, "none")))
		case scene.KindEllipse:
			c := s.Rect.Center()
			body.WriteString(fmt.Sprintf(`<ellipse id="%s" cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f"%s/>`,
				s.Name, c.X, c.Y, s.Rect.W/2, s.Rect.H/2, attrs(s, fill)))
		case scene.KindRect:
			radius := ""
			if s.Style.Radius > 0 {
				radius = fmt.Sprintf(` rx="%.2f" ry="%.2f"`, s.Style.Radius, s.Style.Radius)
			}
			body.WriteString(fmt.Sprintf(`<rect id="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s%s/>`,
				s.Name, s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, radius, attrs(s, fill)))
		case scene.KindPath:
			body.WriteString(fmt.Sprintf(`<path id="%s" d="%s"%s/>`, s.Name, PathData(s.Path), attrs(s, fill)))
		case scene.KindText:
			weight := "normal"
			if s.Bold {
				weight = "bold"
			}
			body.WriteString(fmt.Sprintf(`<text id="%s" x="%.2f" y="%.2f" font-family="%s" font-size="%.0f" font-weight="%s" dominant-baseline="hanging" fill="%s"%s>%s</text>`,
				s.Name, s.Rect.X, s.Rect.Y, fontFamily, s.FontSize, weight, fill, transform(s), html.EscapeString(s.Text)))
		default:
			continue
		}
		body.WriteString("\n")
	}

	if defs.Len() > 0 {
		sb.WriteString("<defs>\n")
		sb.WriteString(defs.String())
		sb.WriteString("</defs>\n")
	}
	sb.WriteString(body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes ShapesToSVG to w.
func WriteSVG(w io.Writer, shapes []scene.Shape, v scene.Viewport) error {
	_, err := io.WriteString(w, ShapesToSVG(shapes, v))
	return err
}

// PathData returns p as an SVG path "d" attribute.
func PathData(p scene.Path) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("M%.2f,%.2f", p.Start.X, p.Start.Y))
	for _, seg := range p.Segments {
		switch seg.Kind {
		case scene.SegLine:
			sb.WriteString(fmt.Sprintf(" L%.2f,%.2f", seg.To.X, seg.To.Y))
		case scene.SegCubic:
			sb.WriteString(fmt.Sprintf(" C%.2f,%.2f %.2f,%.2f %.2f,%.2f",
				seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.To.X, seg.To.Y))
		case scene.SegArc:
			sb.WriteString(fmt.Sprintf(" A%.2f,%.2f 0 %d %d %.2f,%.2f",
				seg.RX, seg.RY, flag(seg.LargeArc), flag(seg.Clockwise), seg.To.X, seg.To.Y))
		}
	}
	if p.Closed {
		sb.WriteString(" Z")
	}
	return sb.String()
}

func writeGradient(sb *strings.Builder, id string, g *scene.Gradient) {
	sb.WriteString(fmt.Sprintf(`<linearGradient id="%s" x1="%g" y1="%g" x2="%g" y2="%g">`,
		id, g.Start.X, g.Start.Y, g.End.X, g.End.Y))
	sb.WriteString("\n")
	for _, st := range g.Stops {
		sb.WriteString(fmt.Sprintf(`<stop offset="%g" stop-color="%s"`, st.Offset, st.Color.Hex()))
		if st.Color.A != 255 {
			sb.WriteString(fmt.Sprintf(` stop-opacity="%.3f"`, float64(st.Color.A)/255))
		}
		sb.WriteString("/>\n")
	}
	sb.WriteString("</linearGradient>\n")
}

func attrs(s scene.Shape, fill string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(` fill="%s"`, fill))

	st := s.Style
	if !st.Stroke.IsNone() && st.StrokeWidth > 0 {
		sb.WriteString(fmt.Sprintf(` stroke="%s" stroke-width="%g"`, st.Stroke.Hex(), st.StrokeWidth))
		if st.Cap == scene.CapRound {
			sb.WriteString(` stroke-linecap="round"`)
		}
	}
	if st.Opacity < 1 {
		sb.WriteString(fmt.Sprintf(` opacity="%.3f"`, st.Opacity))
	}
	sb.WriteString(transform(s))
	return sb.String()
}

func transform(s scene.Shape) string {
	if s.Rotation == 0 {
		return ""
	}
	return fmt.Sprintf(` transform="rotate(%g %.2f %.2f)"`, s.Rotation, s.Pivot.X, s.Pivot.Y)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
