package figures

import (
	"fmt"

	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/scene"
)

// BranchAnchor is the main branch geometry the monkey hangs from.
type BranchAnchor struct {
	Root      scene.Point // top edge where the branch leaves the trunk
	Length    float64     // horizontal reach toward the shooter
	Thickness float64
	Slope     float64 // downward drop per pixel of reach
}

// Y returns the top edge of the branch at x. On the far side of the
// trunk, where there is no branch, it is the height of the branch root.
func (b BranchAnchor) Y(x float64) float64 {
	if x >= b.Root.X {
		return b.Root.Y
	}
	if x < b.Root.X-b.Length {
		x = b.Root.X - b.Length
	}
	return b.Root.Y + (b.Root.X-x)*b.Slope
}

func (b BranchAnchor) Tip() scene.Point {
	return scene.Point{X: b.Root.X - b.Length, Y: b.Root.Y + b.Length*b.Slope}
}

// SmallBranch is a thin quadrilateral growing from origin at angle
// degrees (clockwise from +x) that tapers to a point at origin.
func SmallBranch(name string, origin scene.Point, angle, length, thickness float64) scene.Shape {
	end := origin.Add(geom.Direction(angle, length))
	perp := geom.Perpendicular(angle, thickness)

	p := scene.Polygon(origin, end.Add(perp), end.Sub(perp), origin)
	return scene.PathShape(name, p, scene.Filled(twig, 1))
}

func mainBranch(anchor BranchAnchor) []scene.Shape {
	root, tip := anchor.Root, anchor.Tip()
	outline := scene.Polygon(
		root,
		tip,
		geom.Pt(tip.X, tip.Y+anchor.Thickness),
		geom.Pt(root.X, root.Y+anchor.Thickness),
	)
	shapes := []scene.Shape{
		scene.PathShape("tree.branch", outline, scene.Style{Fill: trunkPaint(), Stroke: scene.Black, StrokeWidth: 1, Opacity: 1}),
	}

	for i := 0; i < branchLines; i++ {
		t := float64(i+1) / float64(branchLines+1)
		start := geom.Lerp(root, tip, t)
		line := scene.Line(fmt.Sprintf("tree.branch.grain.%d", i), start, geom.Pt(start.X, start.Y+anchor.Thickness), branchLine, 0.8)
		line.Style.Opacity = 0.6
		shapes = append(shapes, line)
	}
	return shapes
}
