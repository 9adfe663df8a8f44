package axes

import (
	"strings"
	"testing"

	"github.com/san-kum/monkeysim/internal/scene"
)

func labels(shapes []scene.Shape, prefix string) []string {
	var out []string
	for _, s := range shapes {
		if s.Kind == scene.KindText && strings.HasPrefix(s.Name, prefix) {
			out = append(out, s.Text)
		}
	}
	return out
}

func TestRender_TicksAndLabels(t *testing.T) {
	v := scene.Viewport{Width: 800, Height: 600}
	b := scene.Bounds{MaxX: 17.75, MaxY: 13.5}
	s := scene.ScaleState{X: 40, Y: 40}

	shapes := Render(b, s, v, scene.DefaultMargins())

	xs := labels(shapes, "axis.x.label.")
	if strings.Join(xs, ",") != "2,4,6,8,10,12,14,16" {
		t.Errorf("x labels = %v", xs)
	}
	ys := labels(shapes, "axis.y.label.")
	if strings.Join(ys, ",") != "2,4,6,8,10,12" {
		t.Errorf("y labels = %v", ys)
	}

	for _, sh := range shapes {
		if sh.Name == "axis.x.tick.2" {
			if sh.Points[0].X != 60+2*40 || sh.Points[0].Y != 560 || sh.Points[1].Y != 565 {
				t.Errorf("tick 2 misplaced: %v", sh.Points)
			}
		}
		if sh.Name == "axis.y.label.4" {
			if sh.Rect.X != 35 || sh.Rect.Y != 560-4*40-7 {
				t.Errorf("label 4 misplaced: %+v", sh.Rect)
			}
		}
	}
}

func TestRender_SmallRangeUsesUnitTicks(t *testing.T) {
	v := scene.Viewport{Width: 400, Height: 300}
	shapes := Render(scene.Bounds{MaxX: 6, MaxY: 3.9}, scene.ScaleState{X: 50, Y: 50}, v, scene.DefaultMargins())

	if got := strings.Join(labels(shapes, "axis.x.label."), ","); got != "1,2,3,4,5,6" {
		t.Errorf("x labels = %s", got)
	}
	if got := strings.Join(labels(shapes, "axis.y.label."), ","); got != "1,2,3" {
		t.Errorf("y labels = %s", got)
	}
}

func TestRender_OriginSuppressed(t *testing.T) {
	shapes := Render(scene.Bounds{MaxX: 5, MaxY: 5}, scene.ScaleState{X: 10, Y: 10},
		scene.Viewport{Width: 300, Height: 300}, scene.DefaultMargins())

	for _, s := range shapes {
		if s.Kind == scene.KindText && s.Text == "0" {
			t.Errorf("origin label emitted: %s", s.Name)
		}
	}
}

func TestRender_AxisLinesAndTitles(t *testing.T) {
	v := scene.Viewport{Width: 800, Height: 600}
	shapes := Render(scene.Bounds{MaxX: 12, MaxY: 6}, scene.ScaleState{X: 40, Y: 40}, v, scene.DefaultMargins())

	byName := map[string]scene.Shape{}
	for _, s := range shapes {
		byName[s.Name] = s
	}

	y := byName["axis.y"]
	if y.Points[0] != (scene.Point{X: 60, Y: 560}) || y.Points[1] != (scene.Point{X: 60, Y: 10}) {
		t.Errorf("y axis = %v", y.Points)
	}
	x := byName["axis.x"]
	if x.Points[1] != (scene.Point{X: 790, Y: 560}) {
		t.Errorf("x axis end = %v", x.Points[1])
	}

	xt, yt := byName["axis.x.title"], byName["axis.y.title"]
	if xt.Text != XTitle || xt.Rect.X != 400 || xt.Rect.Y != 580 || !xt.Bold {
		t.Errorf("x title = %+v", xt)
	}
	if yt.Text != YTitle || yt.Rotation != -90 || yt.Pivot != (scene.Point{X: 10, Y: 300}) {
		t.Errorf("y title = %+v", yt)
	}
}
