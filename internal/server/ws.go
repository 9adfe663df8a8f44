package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/san-kum/monkeysim/internal/input"
	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	maxMsgSize = 4096
	writeWait  = 5 * time.Second
)

var errUnknownMessage = errors.New("unknown message type")

type envelope struct {
	Type string `json:"type"`
}

type resizeMessage struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type paramsMessage struct {
	Height   string `json:"height"`
	Distance string `json:"distance"`
}

// frameReply is sent after every redraw. Shapes is empty, not null,
// when the viewport had no drawable area.
type frameReply struct {
	Shapes []scene.Shape    `json:"shapes"`
	Scales scene.ScaleState `json:"scales"`
	Bounds scene.Bounds     `json:"bounds"`
	Params scene.Params     `json:"params"`
	View   scene.Viewport   `json:"viewport"`
}

type errorReply struct {
	Error string `json:"error"`
}

// session is one WebSocket client. Its events arrive in order on a single
// goroutine, so the engine needs no locking.
type session struct {
	conn     *websocket.Conn
	engine   *layout.Engine
	params   scene.Params
	viewport scene.Viewport
	log      zerolog.Logger
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.opts.Origins,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket accept")
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxMsgSize)

	sess := &session{
		conn:     conn,
		engine:   s.newEngine(),
		params:   s.opts.Params,
		viewport: s.opts.Viewport,
		log:      s.log.With().Str("remote", r.RemoteAddr).Logger(),
	}
	sess.log.Debug().Msg("session opened")

	if err := sess.run(r.Context()); err != nil {
		sess.log.Debug().Err(err).Msg("session ended")
		return
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

func (ss *session) run(ctx context.Context) error {
	if err := ss.redraw(ctx); err != nil {
		return err
	}
	for {
		_, data, err := ss.conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return nil
			}
			return err
		}
		if err := ss.handle(ctx, data); err != nil {
			return err
		}
	}
}

// handle applies one client message. Bad messages are answered with an
// error reply and leave the session state untouched.
func (ss *session) handle(ctx context.Context, data []byte) error {
	var env envelope
	if err := sonic.Unmarshal(data, &env); err != nil {
		return ss.send(ctx, errorReply{Error: "invalid message: " + err.Error()})
	}

	switch env.Type {
	case "resize":
		var m resizeMessage
		if err := sonic.Unmarshal(data, &m); err != nil {
			return ss.send(ctx, errorReply{Error: "invalid resize: " + err.Error()})
		}
		if err := checkResize(m.Width, m.Height); err != nil {
			return ss.send(ctx, errorReply{Error: err.Error()})
		}
		ss.viewport = scene.Viewport{Width: m.Width, Height: m.Height}
	case "params":
		var m paramsMessage
		if err := sonic.Unmarshal(data, &m); err != nil {
			return ss.send(ctx, errorReply{Error: "invalid params: " + err.Error()})
		}
		p, err := input.Parse(m.Height, m.Distance)
		if err != nil {
			return ss.send(ctx, errorReply{Error: input.Message(err)})
		}
		if err := checkParams(p); err != nil {
			return ss.send(ctx, errorReply{Error: err.Error()})
		}
		ss.params = p
	default:
		ss.log.Debug().Str("type", env.Type).Err(errUnknownMessage).Msg("ignored message")
		return ss.send(ctx, errorReply{Error: errUnknownMessage.Error() + ": " + env.Type})
	}
	return ss.redraw(ctx)
}

func (ss *session) redraw(ctx context.Context) error {
	f := ss.engine.Render(ss.params, ss.viewport)
	shapes := f.Shapes
	if shapes == nil {
		shapes = []scene.Shape{}
	}
	return ss.send(ctx, frameReply{
		Shapes: shapes,
		Scales: ss.engine.Scales(),
		Bounds: f.Bounds,
		Params: ss.params,
		View:   ss.viewport,
	})
}

func (ss *session) send(ctx context.Context, v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return ss.conn.Write(writeCtx, websocket.MessageText, data)
}
