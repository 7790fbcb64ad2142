// Package stream serves computed columns to rendering clients over websockets.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// Path is the HTTP path of the websocket endpoint.
	Path = "/ws"

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	readLimit         = 1 << 16
)

var _ ports.StreamServer = (*Server)(nil)

// Server accepts websocket clients and runs one session per connection.
type Server struct {
	logger  ports.Logger
	origins []string
}

// NewServer creates a Server that accepts clients from any origin.
func NewServer(logger ports.Logger) *Server {
	return &Server{
		logger:  logger,
		origins: []string{"*"},
	}
}

// Handler returns the HTTP handler serving session at Path.
func (s *Server) Handler(session ports.StreamSession) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: s.origins,
		})
		if err != nil {
			s.logger.Error(zerr.Wrap(err, "websocket accept failed"))
			return
		}
		c.SetReadLimit(readLimit)

		err = session(r.Context(), &Conn{ws: c})
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			_ = c.Close(websocket.StatusNormalClosure, "")
			return
		}
		s.logger.Error(zerr.With(zerr.Wrap(err, "stream session failed"), "remote", r.RemoteAddr))
		_ = c.Close(websocket.StatusInternalError, "session failed")
	})
	return mux
}

// Serve listens on addr until ctx is done, then shuts the server down.
func (s *Server) Serve(ctx context.Context, addr string, session ports.StreamSession) error {
	g, ctx := errgroup.WithContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(session),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g.Go(func() error {
		s.logger.Info("streaming on " + addr + Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, "stream server failed"), "addr", addr)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

var _ ports.StreamConn = (*Conn)(nil)

// Conn adapts a websocket connection to ports.StreamConn.
// Clients send parameter records as JSON text messages; fields they omit keep their defaults.
type Conn struct {
	ws *websocket.Conn
}

// Receive reads the next parameter record.
func (c *Conn) Receive(ctx context.Context) (domain.Params, error) {
	_, data, err := c.ws.Read(ctx)
	if err != nil {
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			return domain.Params{}, io.EOF
		}
		return domain.Params{}, zerr.Wrap(err, "failed to read from client")
	}

	p := domain.DefaultParams()
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Params{}, zerr.With(zerr.Wrap(domain.ErrInvalidParams, "malformed parameter message"), "cause", err.Error())
	}
	return p, nil
}

// Send writes ev as a JSON text message.
func (c *Conn) Send(ctx context.Context, ev domain.StreamEvent) error {
	if err := wsjson.Write(ctx, c.ws, ev); err != nil {
		return zerr.Wrap(err, "failed to write to client")
	}
	return nil
}
