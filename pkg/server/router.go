package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mchmarny/recipe-api/pkg/serializer"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// Application endpoints with middleware
	hasRoot := false
	for path, handler := range s.config.Handlers {
		if path == "/" {
			hasRoot = true
		}
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	// Default handler unless the application claimed the root route
	if !hasRoot {
		mux.HandleFunc("/", s.handleDefault)
	}

	return mux
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	routes := make([]string, 0, len(s.config.Handlers)+3)
	for path := range s.config.Handlers {
		routes = append(routes, path)
	}
	routes = append(routes, "/health", "/ready", "/metrics")
	sort.Strings(routes)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
