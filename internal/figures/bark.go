package figures

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	barkSeed   = 42
	barkPieces = 15
)

// Bark scatters the trunk texture. The source is re-seeded on every call
// so identical inputs always give identical rectangles.
func Bark(x, groundY, treeHeight, treeWidth float64) []scene.Shape {
	rng := rand.New(rand.NewSource(barkSeed))

	shapes := make([]scene.Shape, 0, barkPieces)
	for i := 0; i < barkPieces; i++ {
		y := groundY - treeHeight*0.05 - treeHeight*trunkFraction*rng.Float64()
		w := treeWidth * (0.3 + 0.5*rng.Float64())
		xOffset := (treeWidth - w) * (rng.Float64() - 0.5)
		h := treeHeight * (0.02 + 0.03*rng.Float64())

		c := scene.RGB(
			uint8(70+rng.Intn(30)),
			uint8(45+rng.Intn(20)),
			uint8(20+rng.Intn(15)),
		)
		style := scene.FillOnly(c)
		style.Opacity = 0.7 + rng.Float64()*0.3

		shapes = append(shapes, scene.Rectangle(
			fmt.Sprintf("tree.bark.%d", i),
			scene.Rect{X: x - w/2 + xOffset, Y: y, W: w, H: h},
			style,
		))
	}
	return shapes
}
