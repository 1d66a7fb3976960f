package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server represents the HTTP server
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	mu          sync.RWMutex
	ready       bool
}

// New creates a new server instance with the provided options applied on
// top of the default configuration.
func New(opts ...Option) *Server {
	cfg := parseConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Server{
		config:      cfg,
		rateLimiter: rate.NewLimiter(cfg.RateLimit, cfg.RateLimitBurst),
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:           s.setupRoutes(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return s
}

// setReady marks the server as ready to serve traffic
func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// isReady reports whether the server is accepting traffic.
func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Run starts the server and blocks until shutdown. SIGINT and SIGTERM
// trigger a graceful shutdown bounded by the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("server config",
		slog.String("address", s.httpServer.Addr),
		slog.Any("rateLimit", s.config.RateLimit),
		slog.Int("rateLimitBurst", s.config.RateLimitBurst),
		slog.Duration("readTimeout", s.config.ReadTimeout),
		slog.Duration("writeTimeout", s.config.WriteTimeout),
		slog.Duration("idleTimeout", s.config.IdleTimeout),
		slog.Duration("shutdownTimeout", s.config.ShutdownTimeout),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// start runs the listener until the context is canceled or the listener fails.
func (s *Server) start(ctx context.Context) error {
	s.setReady(true)

	slog.Info("starting server",
		"name", s.config.Name,
		"version", s.config.Version,
		"address", s.httpServer.Addr,
	)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}
