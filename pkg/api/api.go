package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mchmarny/recipe-api/pkg/logging"
	"github.com/mchmarny/recipe-api/pkg/recipe"
	"github.com/mchmarny/recipe-api/pkg/server"
)

const (
	name           = "recipesd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/recipe-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server with default configuration and blocks until
// shutdown.
func Serve() error {
	return ServeWithConfig(nil)
}

// ServeWithConfig starts the API server with the provided configuration
// (nil means defaults) and blocks until shutdown. It configures logging,
// seeds the store, mounts routes, and handles graceful shutdown.
func ServeWithConfig(cfg *server.Config) error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	store, err := recipe.NewStore()
	if err != nil {
		return fmt.Errorf("failed to seed recipe store: %w", err)
	}

	h := recipe.NewHandler(store, name, version)

	r := map[string]http.HandlerFunc{
		"/":        h.HandleRoot,
		"/search/": h.HandleSearch,
		"/recipe/": h.HandleRecipe,
	}

	opts := []server.Option{
		server.WithName(name),
		server.WithVersion(version),
	}
	if cfg != nil {
		opts = append([]server.Option{server.WithConfig(cfg)}, opts...)
	}
	opts = append(opts, server.WithHandler(r))

	s := server.New(opts...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
