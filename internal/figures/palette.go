package figures

import "github.com/san-kum/monkeysim/internal/scene"

var (
	barkDark   = scene.RGB(90, 59, 28)
	barkMid    = scene.RGB(110, 70, 33)
	barkLight  = scene.RGB(121, 85, 38)
	branchLine = scene.RGB(80, 55, 30)
	twig       = scene.RGB(101, 67, 33)

	leafDark   = scene.RGB(34, 120, 15)
	leafMedium = scene.RGB(50, 130, 30)
	leafLight  = scene.RGB(65, 145, 40)

	fur     = scene.SaddleBrown
	furHead = scene.Sienna
)

// trunkPaint is the horizontal gradient shared by the trunk and the main branch.
func trunkPaint() scene.Paint {
	return scene.Paint{
		Color: barkMid,
		Gradient: &scene.Gradient{
			Start: scene.Point{X: 0, Y: 0.5},
			End:   scene.Point{X: 1, Y: 0.5},
			Stops: []scene.Stop{
				{Offset: 0.0, Color: barkDark},
				{Offset: 0.3, Color: barkMid},
				{Offset: 0.7, Color: barkLight},
				{Offset: 1.0, Color: barkDark},
			},
		},
	}
}
