package server

import (
	"context"
	"net/http"
	"time"

	"github.com/biolababs/serverless-trivia-game/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Pinger reports backend reachability for the readiness probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves the progression API next to health, readiness and metrics endpoints
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
	ready      Pinger
}

// New creates a server routing pattern to api
func New(addr string, l *logger.Logger, pattern string, api http.Handler, ready Pinger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		logger: l,
		ready:  ready,
	}

	mux.Handle(pattern, api)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler exposes the routing table, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.ready.Ping(ctx); err != nil {
		s.logger.Warn("readiness check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("store unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}

// Start runs the HTTP server until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("starting progression server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
