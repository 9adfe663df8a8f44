package figures

import (
	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	// treeRatio keeps the tree taller than the target it carries.
	treeRatio = 1.5

	minTreeWidth = 20.0
	maxTreeWidth = 40.0

	// trunkFraction is the share of the tree height taken by the trunk;
	// the main branch leaves from its top.
	trunkFraction = 0.85
	trunkTaper    = 0.4

	branchReach     = 3.5
	branchSlope     = 0.15
	branchThickness = 0.35
	branchLines     = 5
)

// TreeHeight returns the tree height in meters for a target at targetHeight.
func TreeHeight(targetHeight float64) float64 {
	return targetHeight * treeRatio
}

// TreeWidth returns the trunk width at the base for a tree treePx pixels tall.
func TreeWidth(treePx float64) float64 {
	return geom.Clamp(treePx/8, minTreeWidth, maxTreeWidth)
}

// Tree draws the tree rooted at (x, groundY) together with the main
// branch anchor the monkey grips.
func Tree(x, targetHeight, groundY float64, s scene.ScaleState) ([]scene.Shape, BranchAnchor) {
	treeHeight := TreeHeight(targetHeight) * s.Y
	treeWidth := TreeWidth(treeHeight)
	trunkTop := groundY - treeHeight*trunkFraction

	trunk := scene.Polygon(
		geom.Pt(x-treeWidth/2, groundY),
		geom.Pt(x+treeWidth/2, groundY),
		geom.Pt(x+treeWidth*trunkTaper, trunkTop),
		geom.Pt(x-treeWidth*trunkTaper, trunkTop),
	)

	shapes := []scene.Shape{
		scene.PathShape("tree.trunk", trunk, scene.Style{Fill: trunkPaint(), Stroke: scene.Black, StrokeWidth: 1, Opacity: 1}),
	}
	shapes = append(shapes, Bark(x, groundY, treeHeight, treeWidth)...)

	anchor := BranchAnchor{
		Root:      geom.Pt(x, trunkTop),
		Length:    treeWidth * branchReach,
		Thickness: treeWidth * branchThickness,
		Slope:     branchSlope,
	}
	shapes = append(shapes, mainBranch(anchor)...)

	twigThickness := anchor.Thickness * 0.7
	shapes = append(shapes,
		SmallBranch("tree.twig.right", anchor.Root, 30, treeWidth*1.5, twigThickness),
		SmallBranch("tree.twig.left", anchor.Root, 150, treeWidth*1.8, twigThickness),
	)

	return append(shapes, canopy(x, groundY, treeHeight, treeWidth)...), anchor
}

// canopy layers four leaf clusters back to front.
func canopy(x, groundY, treeHeight, treeWidth float64) []scene.Shape {
	size := treeWidth * 3

	cluster := func(name string, r scene.Rect, c scene.Color, opacity float64) scene.Shape {
		style := scene.FillOnly(c)
		style.Opacity = opacity
		return scene.Ellipse(name, r, style)
	}

	return []scene.Shape{
		cluster("tree.leaves.0", scene.Rect{X: x - size/2, Y: groundY - treeHeight*1.1, W: size, H: size * 0.8}, leafDark, 0.9),
		cluster("tree.leaves.1", scene.Rect{X: x - size*0.6, Y: groundY - treeHeight*1.05, W: size * 0.9, H: size * 0.85}, leafMedium, 0.85),
		cluster("tree.leaves.2", scene.Rect{X: x + size*0.1, Y: groundY - treeHeight*1.08, W: size * 0.95, H: size * 0.9}, leafLight, 0.82),
		cluster("tree.leaves.3", scene.Rect{X: x - size*0.1, Y: groundY - treeHeight*1.2, W: size * 0.8, H: size * 0.75}, leafDark, 0.88),
	}
}
