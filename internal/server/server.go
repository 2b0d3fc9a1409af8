// Package server streams a running game to read-only spectators.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	addr     string
	log      logrus.FieldLogger
}

func New(addr string, hub *Hub, log logrus.FieldLogger) *Server {
	return &Server{
		handlers: NewHandlers(hub),
		addr:     addr,
		log:      log,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", s.handlers.HandleState)
	mux.HandleFunc("GET /api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/ws", s.handlers.HandleWS)
	return mux
}

// Run serves until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.handlers.Hub.Run(gctx) })
	g.Go(func() error {
		s.log.WithField("addr", s.addr).Info("spectator server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
