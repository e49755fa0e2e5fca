package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ChizhovVadim/chessai/pkg/engine"
)

type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:        "localhost:8080",
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
}

// Server hosts websocket game sessions. Every connection gets its own engine.
type Server struct {
	config       Config
	logger       *log.Logger
	newEvaluator func() engine.IEvaluator
	ctx          context.Context
	cancel       context.CancelFunc
	server       *http.Server
}

func New(config Config, logger *log.Logger, newEvaluator func() engine.IEvaluator) *Server {
	var ctx, cancel = context.WithCancel(context.Background())
	return &Server{
		config:       config,
		logger:       logger,
		newEvaluator: newEvaluator,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (s *Server) newEngine() *engine.Engine {
	return engine.NewEngine(s.newEvaluator(), s.logger)
}

func (s *Server) Handler() http.Handler {
	var mux = http.NewServeMux()
	mux.HandleFunc("/ws", s.WebSocket)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// ListenAndServe blocks until ctx is done, then shuts the server down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	var errChan = make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %v", s.config.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	// running searches see the cancellation and return their best move so far
	s.cancel()
	var shutdownCtx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Println("server stopped")
	return nil
}
