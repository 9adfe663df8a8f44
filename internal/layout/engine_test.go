package layout_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/monkeysim/internal/figures"
	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scene"
)

func indexOf(f layout.Frame, name string) int {
	for i, s := range f.Shapes {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func lastWithPrefix(f layout.Frame, prefix string) int {
	idx := -1
	for i, s := range f.Shapes {
		if strings.HasPrefix(s.Name, prefix) {
			idx = i
		}
	}
	return idx
}

var _ = Describe("Engine", func() {
	var (
		engine *layout.Engine
		params scene.Params
		view   scene.Viewport
	)

	BeforeEach(func() {
		engine = layout.New(layout.WithLogger(zerolog.Nop()))
		params = scene.DefaultParams()
		view = scene.Viewport{Width: 800, Height: 600}
	})

	Context("with the default scene in an 800x600 window", func() {
		var frame layout.Frame

		BeforeEach(func() {
			frame = engine.Settle(params, view, 16)
		})

		It("fits the scene into the available area", func() {
			area, ok := engine.Margins().Available(view)
			Expect(ok).To(BeTrue())
			Expect(params.ShooterDistance * frame.Scales.X).To(BeNumerically("<=", area.Width))
			Expect(params.TargetHeight * frame.Scales.Y).To(BeNumerically("<=", area.Height))
			Expect(frame.Scales).To(Equal(scene.ScaleState{X: 40, Y: 40}))
		})

		It("puts the ground on the x axis", func() {
			Expect(frame.GroundY).To(Equal(560.0))
			Expect(frame.Origin).To(Equal(scene.Point{X: 60, Y: 560}))

			ground, ok := frame.Find("ground")
			Expect(ok).To(BeTrue())
			Expect(ground.Style.Stroke).To(Equal(scene.Brown))
			Expect(ground.Points[0]).To(Equal(scene.Point{X: 60, Y: 560}))
			Expect(ground.Points[1].X).To(BeNumerically("~", 60+frame.Bounds.MaxX*frame.Scales.X, 1e-9))
		})

		It("hangs the monkey at the target height", func() {
			body, ok := frame.Find("monkey.body")
			Expect(ok).To(BeTrue())
			Expect(body.Rect.Y).To(Equal(frame.GroundY - 5*frame.Scales.Y))
			Expect(figures.TreeHeight(params.TargetHeight)).To(Equal(7.5))
		})

		It("places the tree at the shooter distance", func() {
			trunk, ok := frame.Find("tree.trunk")
			Expect(ok).To(BeTrue())
			base := trunk.Path.Start
			width := figures.TreeWidth(7.5 * frame.Scales.Y)
			Expect(base.X + width/2).To(BeNumerically("~", 60+10*frame.Scales.X, 1e-9))
		})

		It("draws back to front", func() {
			Expect(frame.Shapes[0].Name).To(Equal("axis.y"))
			ground := indexOf(frame, "ground")
			Expect(ground).To(BeNumerically(">", lastWithPrefix(frame, "axis.")))
			Expect(indexOf(frame, "shooter.head")).To(BeNumerically(">", ground))
			Expect(indexOf(frame, "tree.trunk")).To(BeNumerically(">", lastWithPrefix(frame, "shooter.")))
			Expect(indexOf(frame, "monkey.body")).To(BeNumerically(">", lastWithPrefix(frame, "tree.")))
			Expect(frame.Shapes[len(frame.Shapes)-1].Name).To(Equal("monkey.tail"))
		})

		It("is idempotent once settled", func() {
			again := engine.Render(params, view)
			Expect(again.Adjusted).To(BeFalse())
			Expect(again).To(Equal(frame))
		})

		It("produces only valid shapes", func() {
			for _, s := range frame.Shapes {
				Expect(s.Valid()).To(BeTrue(), s.Name)
			}
		})
	})

	It("grows by one step per redraw", func() {
		first := engine.Render(params, view)
		Expect(first.Adjusted).To(BeTrue())
		Expect(first.Scales).To(Equal(scene.ScaleState{X: 40, Y: 40}))

		second := engine.Render(params, view)
		Expect(second.Adjusted).To(BeFalse())
	})

	It("renders a complete figure set for the minimum parameters", func() {
		frame := engine.Settle(scene.Params{TargetHeight: 1, ShooterDistance: 1}, view, 16)
		Expect(frame.Empty()).To(BeFalse())
		for _, name := range []string{"axis.x", "axis.y", "ground", "shooter.head", "tree.trunk", "tree.branch", "monkey.body", "monkey.tail"} {
			_, ok := frame.Find(name)
			Expect(ok).To(BeTrue(), name)
		}
		Expect(frame.Scales.X).To(BeNumerically(">=", scene.MinScale))
	})

	It("renders nothing into a zero viewport and keeps its scales", func() {
		before := engine.Scales()
		frame := engine.Render(params, scene.Viewport{})
		Expect(frame.Empty()).To(BeTrue())
		Expect(frame.Shapes).To(BeNil())
		Expect(engine.Scales()).To(Equal(before))
	})

	It("skips viewports smaller than the margins", func() {
		Expect(engine.Render(params, scene.Viewport{Width: 80, Height: 600}).Empty()).To(BeTrue())
		Expect(engine.Render(params, scene.Viewport{Width: 800, Height: 50}).Empty()).To(BeTrue())
	})

	It("remembers past viewports", func() {
		engine.Settle(params, view, 16)
		engine.Settle(params, scene.Viewport{Width: 300, Height: 600}, 16)
		Expect(engine.Scales()).To(Equal(scene.ScaleState{X: 20, Y: 40}))

		frame := engine.Settle(params, view, 16)
		Expect(frame.Scales).To(Equal(scene.ScaleState{X: 40, Y: 80}))

		fresh := layout.New(layout.WithLogger(zerolog.Nop())).Settle(params, view, 16)
		Expect(fresh.Scales).NotTo(Equal(frame.Scales))
	})

	It("forgets its history on Reset", func() {
		engine.Settle(params, view, 16)
		engine.Reset()
		Expect(engine.Scales()).To(Equal(scene.DefaultScaleState()))
	})

	It("honours the configured margins and initial scale", func() {
		e := layout.New(
			layout.WithLogger(zerolog.Nop()),
			layout.WithMargins(scene.Margins{X: 100, Y: 100}),
			layout.WithInitialScale(scene.ScaleState{X: 30, Y: 30}),
		)
		Expect(e.Scales()).To(Equal(scene.ScaleState{X: 30, Y: 30}))

		frame := e.Render(params, view)
		Expect(frame.Origin).To(Equal(scene.Point{X: 100, Y: 500}))
	})

	It("ignores an invalid initial scale", func() {
		e := layout.New(layout.WithInitialScale(scene.ScaleState{X: 0, Y: -1}))
		Expect(e.Scales()).To(Equal(scene.DefaultScaleState()))
	})
})
