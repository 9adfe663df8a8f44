package figures

import (
	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	minShooterHeight = 30.0
	maxShooterHeight = 80.0

	// gunTilt raises the right arm and the gun toward the target.
	gunTilt = 15.0
)

// ShooterHeight is the root size of the hunter in pixels.
func ShooterHeight(s scene.ScaleState) float64 {
	return geom.Clamp(s.Y*2, minShooterHeight, maxShooterHeight)
}

// Shooter draws the hunter with feet on groundY, centered on x.
func Shooter(x, groundY float64, s scene.ScaleState) []scene.Shape {
	h := ShooterHeight(s)
	headSize := h * 0.25
	bodyWidth := h * 0.4
	bodyHeight := h * 0.5
	top := groundY - h

	eyeSize := headSize * 0.2
	pupilSize := eyeSize * 0.6
	eyeY := top + headSize*0.3
	leftEyeX := x - headSize*0.25
	rightEyeX := x + headSize*0.05
	pupilInset := (eyeSize - pupilSize) / 2

	legWidth := bodyWidth * 0.3
	legHeight := h * 0.25

	armWidth := bodyWidth * 0.7
	armHeight := bodyWidth * 0.25
	armY := top + headSize + bodyHeight*0.2

	hat := scene.Polygon(
		geom.Pt(x-headSize*0.7, top+headSize*0.1),
		geom.Pt(x+headSize*0.7, top+headSize*0.1),
		geom.Pt(x+headSize*0.4, top-headSize*0.3),
		geom.Pt(x-headSize*0.4, top-headSize*0.3),
	)

	eye := scene.Filled(scene.White, 0.5)
	pupil := scene.FillOnly(scene.Black)
	legs := scene.Filled(scene.DarkOliveGreen, 1)

	return []scene.Shape{
		scene.Ellipse("shooter.head", scene.Rect{X: x - headSize/2, Y: top, W: headSize, H: headSize}, scene.Filled(scene.Bisque, 1)),
		scene.Ellipse("shooter.eye.left", scene.Rect{X: leftEyeX, Y: eyeY, W: eyeSize, H: eyeSize}, eye),
		scene.Ellipse("shooter.eye.right", scene.Rect{X: rightEyeX, Y: eyeY, W: eyeSize, H: eyeSize}, eye),
		scene.Ellipse("shooter.pupil.left", scene.Rect{X: leftEyeX + pupilInset, Y: eyeY + pupilInset, W: pupilSize, H: pupilSize}, pupil),
		scene.Ellipse("shooter.pupil.right", scene.Rect{X: rightEyeX + pupilInset, Y: eyeY + pupilInset, W: pupilSize, H: pupilSize}, pupil),
		scene.Rectangle("shooter.body", scene.Rect{X: x - bodyWidth/2, Y: top + headSize, W: bodyWidth, H: bodyHeight}, scene.Filled(scene.DarkGreen, 1)),
		scene.Rectangle("shooter.leg.left", scene.Rect{X: x - bodyWidth*0.4, Y: groundY - legHeight, W: legWidth, H: legHeight}, legs),
		scene.Rectangle("shooter.leg.right", scene.Rect{X: x + bodyWidth*0.1, Y: groundY - legHeight, W: legWidth, H: legHeight}, legs),
		scene.Rectangle("shooter.arm.left", scene.Rect{X: x - bodyWidth*0.5 - armWidth*0.3, Y: armY, W: armWidth * 0.6, H: armHeight}, scene.Filled(scene.DarkGreen, 1)),
		scene.Rectangle("shooter.arm.right", scene.Rect{X: x + bodyWidth*0.3, Y: armY, W: armWidth * 0.6, H: armHeight}, scene.Filled(scene.DarkGreen, 1)).Rotated(gunTilt),
		scene.Rectangle("shooter.gun.base", scene.Rect{X: x + bodyWidth*0.6, Y: armY, W: armWidth * 0.9, H: armHeight * 0.6},
			scene.Style{Fill: scene.Solid(scene.Black), Stroke: scene.DarkGray, StrokeWidth: 1, Opacity: 1}).Rotated(gunTilt),
		scene.Rectangle("shooter.gun.barrel", scene.Rect{X: x + bodyWidth*0.95, Y: top + headSize + bodyHeight*0.25, W: armWidth * 1.2, H: armHeight * 0.3},
			scene.Filled(scene.DimGray, 0.5)).Rotated(gunTilt),
		scene.PathShape("shooter.hat", hat, scene.Filled(scene.DarkOliveGreen, 1)),
	}
}
