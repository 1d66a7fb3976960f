// Package api provides the HTTP API layer for the recipe service.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with application-specific routes and handlers.
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET  /            - Greeting and service identity
//   - GET  /search/     - Search recipes by label keyword
//   - GET  /recipe/{id} - Fetch a single recipe by id
//   - POST /recipe/     - Create a new recipe (in memory only)
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/recipe-api/pkg/api.version=1.0.0'"
package api
