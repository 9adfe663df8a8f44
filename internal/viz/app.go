package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/san-kum/monkeysim/internal/input"
	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	panelWidth  = 32
	historySize = 60

	minCanvasCols = 10
	minCanvasRows = 5
)

type field int

const (
	fieldHeight field = iota
	fieldDistance
	fieldCount
)

func (f field) String() string {
	if f == fieldDistance {
		return "Distance"
	}
	return "Height"
}

// App is the terminal preview: a braille canvas of the scene next to a
// panel with the two parameter fields.
type App struct {
	engine *layout.Engine
	params scene.Params

	texts   [fieldCount]string
	focus   field
	editing bool
	editBuf string
	message string

	canvas  *Canvas
	frame   layout.Frame
	history []float64

	theme  Theme
	st     styles
	width  int
	height int
	log    zerolog.Logger
}

func NewApp(engine *layout.Engine, p scene.Params, theme string) App {
	t := GetTheme(theme)
	a := App{
		engine: engine,
		params: p,
		theme:  t,
		st:     newStyles(t),
		width:  100,
		height: 30,
		log:    log.With().Str("module", "tui").Logger(),
	}
	a.texts[fieldHeight] = formatParam(p.TargetHeight)
	a.texts[fieldDistance] = formatParam(p.ShooterDistance)
	a.redraw()
	return a
}

func formatParam(v float64) string { return fmt.Sprintf("%g", v) }

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.redraw()
	case tea.KeyMsg:
		if a.editing {
			return a.editKey(msg), nil
		}
		return a.navKey(msg)
	}
	return a, nil
}

func (a App) navKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k", "shift+tab":
		a.focus = (a.focus + fieldCount - 1) % fieldCount
	case "down", "j", "tab":
		a.focus = (a.focus + 1) % fieldCount
	case "enter", "e":
		a.editing, a.editBuf = true, a.texts[a.focus]
	case "u":
		a.apply()
	case "r":
		a.engine.Reset()
		a.history = nil
		a.redraw()
	case "t":
		a.theme = NextTheme(a.theme.Name)
		a.st = newStyles(a.theme)
	}
	return a, nil
}

func (a App) editKey(msg tea.KeyMsg) App {
	switch msg.Type {
	case tea.KeyEnter:
		a.texts[a.focus] = a.editBuf
		a.editing, a.editBuf = false, ""
		a.apply()
	case tea.KeyEsc:
		a.editing, a.editBuf = false, ""
	case tea.KeyBackspace:
		if r := []rune(a.editBuf); len(r) > 0 {
			a.editBuf = string(r[:len(r)-1])
		}
	case tea.KeyCtrlC:
		a.editing, a.editBuf = false, ""
	case tea.KeyRunes, tea.KeySpace:
		a.editBuf += string(msg.Runes)
	}
	return a
}

// apply is the Update button: parse both fields and redraw, or keep the
// current scene and show why the input was rejected.
func (a *App) apply() {
	p, err := input.Parse(a.texts[fieldHeight], a.texts[fieldDistance])
	if err != nil {
		a.message = input.Message(err)
		a.log.Debug().Err(err).Msg("rejected input")
		return
	}
	a.params, a.message = p, ""
	a.redraw()
}

func (a *App) redraw() {
	cols := a.width - panelWidth - 4
	rows := a.height - 2
	if cols < minCanvasCols {
		cols = minCanvasCols
	}
	if rows < minCanvasRows {
		rows = minCanvasRows
	}

	a.canvas = NewCanvas(cols, rows)
	a.frame = a.engine.Render(a.params, VirtualViewport(a.canvas))
	if a.frame.Empty() {
		return
	}
	Paint(a.canvas, a.frame.Shapes)

	a.history = append(a.history, a.frame.Scales.X)
	if len(a.history) > historySize {
		a.history = a.history[len(a.history)-historySize:]
	}
}

func (a App) View() string {
	canvasView := a.st.canvas.Render(strings.TrimSuffix(a.canvas.String(), "\n"))

	var s strings.Builder
	s.WriteString(GradientText("MONKEY & HUNTER", a.st.start, a.st.end) + "\n")
	s.WriteString(a.st.Separator(panelWidth-4) + "\n\n")

	for f := field(0); f < fieldCount; f++ {
		label := a.st.label.Render(f.String())
		switch {
		case a.editing && f == a.focus:
			s.WriteString("> " + label + a.st.editing.Render(a.editBuf+"_") + "\n")
		case f == a.focus:
			s.WriteString("> " + label + a.st.active.Render(a.texts[f]) + "\n")
		default:
			s.WriteString("  " + label + a.st.value.Render(a.texts[f]) + "\n")
		}
	}
	if a.message != "" {
		s.WriteString("\n" + a.st.errText.Render(a.message) + "\n")
	}

	s.WriteString("\n" + a.st.Separator(panelWidth-4) + "\n")
	if a.frame.Empty() {
		s.WriteString(a.st.subtle.Render("window too small") + "\n")
	} else {
		sc, b := a.frame.Scales, a.frame.Bounds
		s.WriteString(a.st.label.Render("Scale") + a.st.value.Render(fmt.Sprintf("%g x %g px/m", sc.X, sc.Y)) + "\n")
		s.WriteString(a.st.label.Render("Axes") + a.st.value.Render(fmt.Sprintf("%.0f m x %.0f m", b.MaxX, b.MaxY)) + "\n")
	}
	if len(a.history) > 1 {
		chart := asciigraph.Plot(a.history,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-12),
			asciigraph.Caption("x scale per redraw"))
		s.WriteString("\n" + a.st.graph.Render(chart) + "\n")
	}

	s.WriteString("\n" + a.st.keyHint.Render("↑↓ field  enter edit  u update\nr reset scale  t theme  q quit"))

	panel := a.st.panel.Width(panelWidth).Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
}

// Params returns the parameters currently drawn.
func (a App) Params() scene.Params { return a.params }

// Run starts the terminal preview and blocks until the user quits.
func Run(engine *layout.Engine, p scene.Params, theme string) error {
	_, err := tea.NewProgram(NewApp(engine, p, theme), tea.WithAltScreen()).Run()
	return err
}
