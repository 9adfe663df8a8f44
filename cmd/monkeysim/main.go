package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/monkeysim/internal/config"
	"github.com/san-kum/monkeysim/internal/export"
	"github.com/san-kum/monkeysim/internal/gui"
	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scale"
	"github.com/san-kum/monkeysim/internal/server"
	"github.com/san-kum/monkeysim/internal/viz"
)

var (
	configFile   string
	preset       string
	logLevel     string
	targetHeight float64
	distance     float64
	width        float64
	height       float64
	// render
	format  string
	outFile string
	passes  int
	allDir  string
	// serve
	addr string
	// tui
	theme string
	// trace
	fromWidth float64
	toWidth   float64
	steps     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "monkeysim",
		Short: "monkey and hunter scene renderer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel, false)
		},
		RunE: runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset scene")
	rootCmd.PersistentFlags().Float64Var(&targetHeight, "target-height", 0, "target height in meters")
	rootCmd.PersistentFlags().Float64Var(&distance, "distance", 0, "shooter distance in meters")
	rootCmd.PersistentFlags().Float64Var(&width, "width", 0, "viewport width in pixels")
	rootCmd.PersistentFlags().Float64Var(&height, "height", 0, "viewport height in pixels")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "draw the scene in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "jungle", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "export one settled frame",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&format, "format", "", "output format (svg, png, json); defaults to the --out extension or svg")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (stdout if empty)")
	renderCmd.Flags().IntVar(&passes, "passes", 16, "maximum redraws while settling the scale")
	renderCmd.Flags().StringVar(&allDir, "all-presets", "", "render every preset into this directory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tHEIGHT\tDISTANCE\tVIEWPORT\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				view := "-"
				if p.Viewport.Width > 0 {
					view = fmt.Sprintf("%gx%g", p.Viewport.Width, p.Viewport.Height)
				}
				fmt.Fprintf(w, "%s\t%g\t%g\t%s\t%s\n", name, p.Params.TargetHeight, p.Params.ShooterDistance, view, p.Description)
			}
			return w.Flush()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve scenes over HTTP and WebSocket",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+config.DefaultAddr+")")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "sweep the window width and plot the x scale",
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&fromWidth, "from", 200, "narrowest width")
	traceCmd.Flags().Float64Var(&toWidth, "to", 1600, "widest width")
	traceCmd.Flags().IntVar(&steps, "steps", 28, "steps in each direction")

	rootCmd.AddCommand(guiCmd, tuiCmd, renderCmd, presetsCmd, serveCmd, traceCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves defaults, preset, file, environment and flags, in
// that order, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (have %s)", preset, strings.Join(config.ListPresets(), ", "))
	}
	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("target-height") {
		cfg.Scene.TargetHeight = targetHeight
	}
	if flags.Changed("distance") {
		cfg.Scene.ShooterDistance = distance
	}
	if flags.Changed("width") {
		cfg.Viewport.Width = width
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = height
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := setupLogging(cfg.Log.Level, cfg.Log.JSON); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(level string, asJSON bool) error {
	if level == "" {
		level = config.DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	if asJSON {
		out = os.Stderr
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

func newEngine(cfg *config.Config) *layout.Engine {
	return layout.New(
		layout.WithMargins(cfg.MarginSize()),
		layout.WithInitialScale(cfg.Scales()),
		layout.WithLogger(log.Logger),
	)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v := cfg.ViewportSize()
	gui.Run(newEngine(cfg), cfg.Params(), int(v.Width), int(v.Height))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if viz.GetTheme(theme).Name != theme {
		return fmt.Errorf("unknown theme: %s (have %s)", theme, strings.Join(viz.ThemeNames(), ", "))
	}
	// bubbletea owns the terminal; keep log lines out of it.
	log.Logger = log.Logger.Output(io.Discard)
	return viz.Run(newEngine(cfg), cfg.Params(), theme)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := format
	if name == "" {
		name = "svg"
		if i := strings.LastIndex(outFile, "."); i >= 0 {
			name = outFile[i:]
		}
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	if allDir != "" {
		return renderPresets(cmd.Context(), cfg, f, allDir)
	}

	p, v := cfg.Params(), cfg.ViewportSize()
	frame := newEngine(cfg).Settle(p, v, passes)
	if frame.Empty() {
		return fmt.Errorf("viewport %gx%g leaves no room for the scene", v.Width, v.Height)
	}

	var w io.Writer = cmd.OutOrStdout()
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	if err := export.Write(w, f, frame, p, v); err != nil {
		return err
	}
	if outFile != "" {
		log.Info().
			Str("file", outFile).
			Str("format", string(f)).
			Float64("x_scale", frame.Scales.X).
			Float64("y_scale", frame.Scales.Y).
			Msg("scene written")
	}
	return nil
}

func renderPresets(ctx context.Context, cfg *config.Config, f export.Format, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var jobs []export.Job
	for _, name := range config.ListPresets() {
		pc := *cfg
		pc.ApplyPreset(name)
		jobs = append(jobs, export.Job{Name: name, Params: pc.Params(), Viewport: pc.ViewportSize()})
	}

	var failed int
	for _, r := range export.RenderBatch(ctx, jobs, func() *layout.Engine { return newEngine(cfg) }, passes) {
		if r.Err != nil {
			log.Error().Err(r.Err).Str("preset", r.Job.Name).Msg("render failed")
			failed++
			continue
		}
		path := filepath.Join(dir, r.Job.Name+"."+string(f))
		if err := writeFile(path, f, r); err != nil {
			return err
		}
		log.Info().Str("file", path).Float64("x_scale", r.Frame.Scales.X).Float64("y_scale", r.Frame.Scales.Y).Msg("scene written")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d presets failed", failed, len(jobs))
	}
	return nil
}

func writeFile(path string, f export.Format, r export.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(file, f, r.Frame, r.Job.Params, r.Job.Viewport); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Params:       cfg.Params(),
		Viewport:     cfg.ViewportSize(),
		Margins:      cfg.MarginSize(),
		InitialScale: cfg.Scales(),
		Origins:      cfg.Server.Origins,
	})
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if fromWidth <= 0 || toWidth <= 0 {
		return fmt.Errorf("widths must be positive")
	}

	p := cfg.Params()
	ramp := scale.WidthRamp(fromWidth, toWidth, cfg.Viewport.Height, steps)
	samples := scale.NewController().
		WithLogger(log.Logger.Level(zerolog.WarnLevel)).
		Sweep(cfg.Scales(), p, cfg.MarginSize(), ramp)

	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	for _, s := range samples {
		xs = append(xs, s.Scales.X)
		ys = append(ys, s.Scales.Y)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scene: height %gm, distance %gm, window height %gpx\n", p.TargetHeight, p.ShooterDistance, cfg.Viewport.Height)
	fmt.Fprintf(out, "width: %g -> %g -> %g px in %d steps\n\n", fromWidth, toWidth, fromWidth, len(samples))

	graph := asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow),
		asciigraph.Caption("x scale (green) and y scale (yellow), px/m"),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tWIDTH\tX\tY\t")
	for i, s := range samples {
		note := ""
		if s.Skipped {
			note = "skipped"
		}
		fmt.Fprintf(w, "%d\t%.0f\t%g\t%g\t%s\n", i, s.Viewport.Width, s.Scales.X, s.Scales.Y, note)
	}
	return w.Flush()
}
