// Package gui is the desktop surface: a resizable raylib window with a
// toolbar holding the height and distance fields and an Update button,
// and the scene drawn below it.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/san-kum/monkeysim/internal/input"
	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	title = "Monkey Simulation"

	toolbarHeight = 44
	fieldWidth    = 90
	fieldHeight   = 26
	buttonWidth   = 80
	maxFieldRunes = 12
)

var (
	ColBg       = rl.White
	ColToolbar  = rl.NewColor(240, 240, 240, 255)
	ColBorder   = rl.NewColor(160, 160, 160, 255)
	ColFocus    = rl.NewColor(0, 120, 215, 255)
	ColText     = rl.NewColor(30, 30, 30, 255)
	ColError    = rl.NewColor(200, 30, 30, 255)
	ColButton   = rl.NewColor(225, 225, 225, 255)
	ColButtonHi = rl.NewColor(229, 241, 251, 255)
)

type textField struct {
	Label string
	Text  string
	Rect  rl.Rectangle
}

type App struct {
	engine *layout.Engine
	params scene.Params

	fields  [2]textField
	focus   int
	button  rl.Rectangle
	message string

	frame    layout.Frame
	viewport scene.Viewport
	font     rl.Font
	log      zerolog.Logger
}

// initWindow opens a resizable window of the given size.
func initWindow(width, height int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height+toolbarHeight), title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(engine *layout.Engine, p scene.Params) *App {
	a := &App{
		engine: engine,
		params: p,
		font:   rl.GetFontDefault(),
		log:    log.With().Str("module", "gui").Logger(),
	}
	a.fields[0] = textField{Label: "Height (m):", Text: fmt.Sprintf("%g", p.TargetHeight)}
	a.fields[1] = textField{Label: "Distance (m):", Text: fmt.Sprintf("%g", p.ShooterDistance)}
	a.layoutToolbar()
	return a
}

// Run opens the window and blocks until it is closed. width and height
// size the drawing area below the toolbar.
func Run(engine *layout.Engine, p scene.Params, width, height int) {
	initWindow(width, height)
	defer rl.CloseWindow()
	NewApp(engine, p).RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) layoutToolbar() {
	x := float32(10)
	y := float32(toolbarHeight-fieldHeight) / 2
	for i := range a.fields {
		x += float32(rl.MeasureText(a.fields[i].Label, 14)) + 8
		a.fields[i].Rect = rl.NewRectangle(x, y, fieldWidth, fieldHeight)
		x += fieldWidth + 16
	}
	a.button = rl.NewRectangle(x, y, buttonWidth, fieldHeight)
}

// canvasViewport is the window area below the toolbar.
func canvasViewport() scene.Viewport {
	return scene.Viewport{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight() - toolbarHeight),
	}
}

func (a *App) Update() {
	// a size change is one redraw event
	if v := canvasViewport(); v != a.viewport {
		a.viewport = v
		a.redraw()
	}

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		for i := range a.fields {
			if rl.CheckCollisionPointRec(mouse, a.fields[i].Rect) {
				a.focus = i
			}
		}
		if rl.CheckCollisionPointRec(mouse, a.button) {
			a.apply()
		}
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		a.focus = (a.focus + 1) % len(a.fields)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		a.apply()
	}

	f := &a.fields[a.focus]
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		if r := []rune(f.Text); len(r) > 0 {
			f.Text = string(r[:len(r)-1])
		}
	}
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && len([]rune(f.Text)) < maxFieldRunes {
			f.Text += string(ch)
		}
	}
}

// apply is the Update button.
func (a *App) apply() {
	p, err := input.Parse(a.fields[0].Text, a.fields[1].Text)
	if err != nil {
		a.message = input.Message(err)
		a.log.Debug().Err(err).Msg("rejected input")
		return
	}
	a.params, a.message = p, ""
	a.redraw()
}

func (a *App) redraw() {
	a.frame = a.engine.Render(a.params, a.viewport)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	cam := rl.Camera2D{Offset: rl.NewVector2(0, toolbarHeight), Zoom: 1}
	rl.BeginMode2D(cam)
	for _, s := range a.frame.Shapes {
		a.paint(s)
	}
	rl.EndMode2D()

	a.drawToolbar()
	rl.EndDrawing()
}

func (a *App) drawToolbar() {
	w := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, w, toolbarHeight, ColToolbar)
	rl.DrawLine(0, toolbarHeight-1, w, toolbarHeight-1, ColBorder)

	for i, f := range a.fields {
		ty := int32(f.Rect.Y) + 6
		a.drawText(f.Label, int32(f.Rect.X)-rl.MeasureText(f.Label, 14)-8, ty, 14, ColText)
		rl.DrawRectangleRec(f.Rect, rl.White)
		border := ColBorder
		if i == a.focus {
			border = ColFocus
		}
		rl.DrawRectangleLinesEx(f.Rect, 1, border)
		text := f.Text
		if i == a.focus && (int(rl.GetTime()*2)%2 == 0) {
			text += "|"
		}
		a.drawText(text, int32(f.Rect.X)+6, ty, 14, ColText)
	}

	fill := ColButton
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), a.button) {
		fill = ColButtonHi
	}
	rl.DrawRectangleRec(a.button, fill)
	rl.DrawRectangleLinesEx(a.button, 1, ColBorder)
	label := "Update"
	a.drawText(label, int32(a.button.X+(a.button.Width-float32(rl.MeasureText(label, 14)))/2), int32(a.button.Y)+6, 14, ColText)

	if a.message != "" {
		a.drawText(a.message, int32(a.button.X+a.button.Width)+16, int32(a.button.Y)+6, 14, ColError)
	}
}

func (a *App) drawText(text string, x, y int32, size int32, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
