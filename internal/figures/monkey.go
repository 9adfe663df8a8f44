package figures

import (
	"math"

	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	minMonkeyScale = 15.0
	maxMonkeyScale = 30.0

	legTilt = 15.0
)

// MonkeyScale is the root size of the monkey in pixels.
func MonkeyScale(s scene.ScaleState) float64 {
	return geom.Clamp(math.Min(s.X, s.Y)*0.75, minMonkeyScale, maxMonkeyScale)
}

// MonkeyY is the pixel row of the top of the monkey's body: exactly
// targetHeight meters above the ground.
func MonkeyY(targetHeight, groundY float64, s scene.ScaleState) float64 {
	return groundY - targetHeight*s.Y
}

// Monkey draws the monkey centered on x at the target height, with its
// arms reaching up to the branch described by anchor.
func Monkey(x, targetHeight, groundY float64, s scene.ScaleState, anchor BranchAnchor) []scene.Shape {
	ms := MonkeyScale(s)
	y := MonkeyY(targetHeight, groundY, s)

	bodyWidth := ms * 0.8
	bodyHeight := ms * 1.2
	headSize := ms * 0.9
	eyeSize := headSize * 0.15
	pupilSize := eyeSize * 0.6
	earSize := headSize * 0.25
	armWidth := bodyWidth * 0.25
	legWidth := bodyWidth * 0.25
	legLength := bodyHeight * 0.7

	eyeY := y - headSize*0.65
	mouthY := y - headSize*0.45

	mouth := scene.NewPath(geom.Pt(x-headSize*0.15, mouthY)).
		ArcTo(geom.Pt(x+headSize*0.15, mouthY), headSize*0.2, headSize*0.1, false, true).
		Build()

	leftArm := arm(x, y, bodyWidth, bodyHeight, anchor.Y(x-bodyWidth*0.3), anchor.Thickness)
	rightArm := mirror(arm(x, y, bodyWidth, bodyHeight, anchor.Y(x+bodyWidth*0.3), anchor.Thickness), x)

	tail := scene.NewPath(geom.Pt(x, y+bodyHeight*0.8)).
		CubicTo(
			geom.Pt(x+bodyWidth*0.5, y+bodyHeight*1.1),
			geom.Pt(x+bodyWidth*0.8, y+bodyHeight*0.9),
			geom.Pt(x+bodyWidth*0.9, y+bodyHeight*0.5),
		).
		Build()
	tailStyle := scene.Stroked(fur, armWidth*0.8)
	tailStyle.Cap = scene.CapRound

	eye := scene.Filled(scene.White, 0.5)
	pupil := scene.FillOnly(scene.Black)
	limb := scene.Filled(fur, 1)
	leg := scene.Filled(fur, 1)
	leg.Radius = legWidth / 2

	leftLeg := scene.Rect{X: x - bodyWidth*0.4, Y: y + bodyHeight*0.8, W: legWidth, H: legLength}
	rightLeg := scene.Rect{X: x + bodyWidth*0.4 - legWidth, Y: y + bodyHeight*0.8, W: legWidth, H: legLength}

	return []scene.Shape{
		scene.Ellipse("monkey.body", scene.Rect{X: x - bodyWidth/2, Y: y, W: bodyWidth, H: bodyHeight}, scene.Filled(fur, 1)),
		scene.Ellipse("monkey.head", scene.Rect{X: x - headSize/2, Y: y - headSize*0.8, W: headSize, H: headSize}, scene.Filled(furHead, 1)),
		scene.Ellipse("monkey.face", scene.Rect{X: x - headSize*0.35, Y: y - headSize*0.7, W: headSize * 0.7, H: headSize * 0.6}, scene.Filled(scene.Bisque, 0.5)),
		scene.Ellipse("monkey.eye.left", scene.Rect{X: x - headSize*0.25, Y: eyeY, W: eyeSize, H: eyeSize}, eye),
		scene.Ellipse("monkey.pupil.left", scene.Rect{X: x - headSize*0.25 + eyeSize*0.2, Y: eyeY + eyeSize*0.2, W: pupilSize, H: pupilSize}, pupil),
		scene.Ellipse("monkey.eye.right", scene.Rect{X: x + headSize*0.1, Y: eyeY, W: eyeSize, H: eyeSize}, eye),
		scene.Ellipse("monkey.pupil.right", scene.Rect{X: x + headSize*0.1 + eyeSize*0.2, Y: eyeY + eyeSize*0.2, W: pupilSize, H: pupilSize}, pupil),
		scene.PathShape("monkey.mouth", mouth, scene.Stroked(scene.Black, 1)),
		scene.Ellipse("monkey.ear.left", scene.Rect{X: x - headSize*0.5 - earSize*0.3, Y: y - headSize*0.7, W: earSize, H: earSize}, scene.Filled(fur, 0.5)),
		scene.Ellipse("monkey.ear.right", scene.Rect{X: x + headSize*0.5 - earSize*0.7, Y: y - headSize*0.7, W: earSize, H: earSize}, scene.Filled(fur, 0.5)),
		scene.PathShape("monkey.arm.left", leftArm, limb),
		scene.PathShape("monkey.arm.right", rightArm, limb),
		scene.Rectangle("monkey.leg.left", leftLeg, leg).Rotated(legTilt),
		scene.Rectangle("monkey.leg.right", rightLeg, leg).RotatedAbout(-legTilt, geom.Pt(rightLeg.X+rightLeg.W, rightLeg.Y)),
		scene.PathShape("monkey.tail", tail, tailStyle),
	}
}

// arm is the closed outline of the left arm: up the outside to the
// branch, back down the inside to the shoulder.
func arm(x, y, bodyWidth, bodyHeight, branchY, thickness float64) scene.Path {
	return scene.NewPath(geom.Pt(x-bodyWidth*0.3, y+bodyHeight*0.2)).
		CubicTo(
			geom.Pt(x-bodyWidth*0.5, y),
			geom.Pt(x-bodyWidth*0.4, branchY+thickness),
			geom.Pt(x-bodyWidth*0.3, branchY+thickness/2),
		).
		CubicTo(
			geom.Pt(x-bodyWidth*0.2, branchY+thickness*0.8),
			geom.Pt(x-bodyWidth*0.1, y+bodyHeight*0.1),
			geom.Pt(x-bodyWidth*0.1, y+bodyHeight*0.2),
		).
		Close().
		Build()
}

// mirror reflects p across the vertical line through axisX.
func mirror(p scene.Path, axisX float64) scene.Path {
	flip := func(q scene.Point) scene.Point { return scene.Point{X: 2*axisX - q.X, Y: q.Y} }

	out := scene.Path{Start: flip(p.Start), Closed: p.Closed, Segments: make([]scene.Segment, len(p.Segments))}
	for i, s := range p.Segments {
		s.To, s.C1, s.C2 = flip(s.To), flip(s.C1), flip(s.C2)
		if s.Kind == scene.SegArc {
			s.Clockwise = !s.Clockwise
		}
		out.Segments[i] = s
	}
	return out
}
