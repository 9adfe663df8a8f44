// Package server exposes the renderer over HTTP: one-shot scene exports
// and a WebSocket session that keeps its own scale history.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/san-kum/monkeysim/internal/export"
	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/input"
	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	maxDimension = 4096
	settlePasses = 16

	// MaxParam caps height and distance, in meters. Axis ticks grow
	// linearly with the scene size.
	MaxParam = 1000.0
)

var (
	ErrBadViewport   = errors.New("width and height must be positive numbers")
	ErrParamTooLarge = fmt.Errorf("height and distance must be at most %g", MaxParam)
)

type Options struct {
	Params       scene.Params
	Viewport     scene.Viewport
	Margins      scene.Margins
	InitialScale scene.ScaleState
	// Origins are extra host patterns allowed to open /ws.
	Origins []string
}

type Server struct {
	opts   Options
	router *mux.Router
	log    zerolog.Logger
}

func New(opts Options) *Server {
	s := &Server{
		opts:   opts,
		router: mux.NewRouter(),
		log:    log.With().Str("module", "server").Logger(),
	}
	s.routes()
	return s
}

// WithLogger replaces the request logger.
func (s *Server) WithLogger(l zerolog.Logger) *Server {
	s.log = l.With().Str("module", "server").Logger()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.recovery)
	s.router.Use(s.logRequests)

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	s.router.HandleFunc("/scene.{format:svg|png|json}", s.handleScene).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) newEngine() *layout.Engine {
	return layout.New(
		layout.WithMargins(s.opts.Margins),
		layout.WithInitialScale(s.opts.InitialScale),
		layout.WithLogger(s.log),
	)
}

// handleScene renders one settled frame from a fresh engine.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	p, v, err := s.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	frame := s.newEngine().Settle(p, v, settlePasses)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	if err := export.Write(w, format, frame, p, v); err != nil {
		s.log.Error().Err(err).Str("format", string(format)).Msg("write scene")
	}
}

// parseQuery reads height, distance, w and h, falling back to the
// configured defaults for missing keys. Parameter errors carry the same
// message a desktop user would see.
func (s *Server) parseQuery(r *http.Request) (scene.Params, scene.Viewport, error) {
	q := r.URL.Query()

	heightText := formatDefault(q.Get("height"), s.opts.Params.TargetHeight)
	distanceText := formatDefault(q.Get("distance"), s.opts.Params.ShooterDistance)
	p, err := input.Parse(heightText, distanceText)
	if err != nil {
		return scene.Params{}, scene.Viewport{}, errors.New(input.Message(err))
	}
	if err := checkParams(p); err != nil {
		return scene.Params{}, scene.Viewport{}, err
	}

	v := s.opts.Viewport
	if text := q.Get("w"); text != "" {
		if v.Width, err = dimension(text); err != nil {
			return scene.Params{}, scene.Viewport{}, err
		}
	}
	if text := q.Get("h"); text != "" {
		if v.Height, err = dimension(text); err != nil {
			return scene.Params{}, scene.Viewport{}, err
		}
	}
	return p, v, nil
}

func formatDefault(text string, def float64) string {
	if text == "" {
		return strconv.FormatFloat(def, 'g', -1, 64)
	}
	return text
}

func checkParams(p scene.Params) error {
	if p.TargetHeight > MaxParam || p.ShooterDistance > MaxParam {
		return fmt.Errorf("%w (height=%g, distance=%g)", ErrParamTooLarge, p.TargetHeight, p.ShooterDistance)
	}
	return nil
}

// checkResize accepts empty and negative sizes, which render nothing,
// but not sizes past maxDimension.
func checkResize(w, h float64) error {
	if !geom.IsFinite(w, h) || w > maxDimension || h > maxDimension {
		return fmt.Errorf("%w (max %d): %gx%g", ErrBadViewport, maxDimension, w, h)
	}
	return nil
}

func dimension(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v <= 0 || v > maxDimension {
		return 0, fmt.Errorf("%w (max %d): %q", ErrBadViewport, maxDimension, text)
	}
	return v, nil
}

func (s *Server) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("recovered")
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// Hijack passes the WebSocket upgrade through to the real connection.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
