package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no accept header", "", "v1"},
		{"plain json", "application/json", "v1"},
		{"vendor v1", "application/vnd.recipeapi.v1+json", "v1"},
		{"unsupported version falls back", "application/vnd.recipeapi.v9+json", "v1"},
		{"unrelated vendor type", "application/vnd.other.v2+json", "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			if got := negotiateAPIVersion(req); got != tt.want {
				t.Errorf("negotiateAPIVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	w := httptest.NewRecorder()
	SetAPIVersionHeader(w, "v1")

	if got := w.Header().Get("X-API-Version"); got != "v1" {
		t.Errorf("X-API-Version = %q, want v1", got)
	}
}
