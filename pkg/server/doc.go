// Package server implements a reusable HTTP server for the recipe API.
//
// The server is stateless with respect to the application: handlers are
// mounted via configuration and wrapped with a common middleware chain.
//
// # Architecture
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking via X-Request-Id (generated when absent)
//   - API version negotiation via vendor Accept header
//   - Panic recovery for resilience
//   - Prometheus RED metrics and a /metrics endpoint
//   - Graceful shutdown on SIGINT/SIGTERM
//   - Health (/health) and readiness (/ready) probes for Kubernetes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("recipesd"),
//	    server.WithVersion("v1.0.0"),
//	    server.WithHandler(routes),
//	)
//	if err := s.Run(ctx); err != nil {
//	    slog.Error("server exited with error", "error", err)
//	}
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "Recipe with id 999 not found",
//	  "details": {"id": 999},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-08-31T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes: NOT_FOUND (404), INVALID_REQUEST (400), METHOD_NOT_ALLOWED
// (405), RATE_LIMIT_EXCEEDED (429), SERVICE_UNAVAILABLE (503), INTERNAL (500).
//
// # Configuration
//
// Environment variables: PORT (listen port, default 8080) and
// SHUTDOWN_TIMEOUT_SECONDS (graceful shutdown bound, default 30s).
package server
