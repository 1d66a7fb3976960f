package recipe

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	apierrors "github.com/mchmarny/recipe-api/pkg/errors"
	"github.com/mchmarny/recipe-api/pkg/serializer"
	"github.com/mchmarny/recipe-api/pkg/server"
)

const (
	// minKeywordLength is the shortest keyword the search endpoint accepts.
	// Enforced at the boundary only; the query engine itself matches any
	// non-empty keyword.
	minKeywordLength = 3

	// maxCreateBodyBytes caps create payloads.
	maxCreateBodyBytes = 1 << 20
)

// Handler exposes the store over HTTP.
type Handler struct {
	store   *Store
	name    string
	version string
}

// NewHandler creates a Handler serving the given store. The name and
// version are reported on the root route.
func NewHandler(store *Store, name, version string) *Handler {
	return &Handler{
		store:   store,
		name:    name,
		version: version,
	}
}

// HandleRoot serves the fixed greeting on GET /. Any other path falls
// through to here via the mux and gets a structured 404.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		server.WriteError(w, r, http.StatusNotFound, apierrors.ErrCodeNotFound,
			"Not found", false, map[string]any{
				"path": r.URL.Path,
			})
		return
	}

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apierrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	resp := struct {
		Msg     string   `json:"msg"`
		Name    string   `json:"name"`
		Version string   `json:"version"`
		Routes  []string `json:"routes"`
	}{
		Msg:     "Hello World!",
		Name:    h.name,
		Version: h.version,
		Routes: []string{
			"GET /search/",
			"GET /recipe/{id}",
			"POST /recipe/",
			"GET /health",
			"GET /ready",
			"GET /metrics",
		},
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleSearch processes GET /search/ requests. The keyword parameter is
// optional but must be at least minKeywordLength characters when present;
// max_results defaults to DefaultMaxResults.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apierrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	q := r.URL.Query()

	keyword := strings.TrimSpace(q.Get("keyword"))
	if keyword != "" && utf8.RuneCountInString(keyword) < minKeywordLength {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			fmt.Sprintf("keyword must be at least %d characters", minKeywordLength), false,
			map[string]any{
				"keyword": keyword,
			})
		return
	}

	maxResults := DefaultMaxResults
	if raw := q.Get("max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
				"max_results must be an integer", false, map[string]any{
					"max_results": raw,
				})
			return
		}
		maxResults = parsed
	}

	results := h.store.Search(keyword, maxResults)

	slog.Debug("search completed",
		"keyword", keyword,
		"maxResults", maxResults,
		"matches", len(results),
	)

	serializer.RespondJSON(w, http.StatusOK, SearchResults{Results: results})
}

// HandleRecipe dispatches /recipe/ requests: GET fetches by id, POST
// creates a new record.
func (h *Handler) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleFetch(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, apierrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet, http.MethodPost},
			})
	}
}

func (h *Handler) handleFetch(w http.ResponseWriter, r *http.Request) {
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/recipe"), "/")
	if raw == "" {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			"recipe id is required", false, nil)
		return
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			"recipe id must be an integer", false, map[string]any{
				"id": raw,
			})
		return
	}

	rec, err := h.store.FetchByID(id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to fetch recipe", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/recipe"), "/"); rest != "" {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			"recipe id is not allowed on create", false, map[string]any{
				"path": r.URL.Path,
			})
		return
	}

	req, err := parseCreateRequest(r.Body, r.Header.Get("Content-Type"))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			"Invalid recipe payload", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	var missing []string
	if strings.TrimSpace(req.Label) == "" {
		missing = append(missing, "label")
	}
	if strings.TrimSpace(req.Source) == "" {
		missing = append(missing, "source")
	}
	if len(missing) > 0 {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			"Missing required fields", false, map[string]any{
				"missing": missing,
			})
		return
	}

	rec := h.store.Create(req.Label, req.Source, req.URL)

	slog.Debug("recipe created",
		"id", rec.ID,
		"label", rec.Label,
	)

	serializer.RespondJSON(w, http.StatusCreated, rec)
}

// parseCreateRequest decodes a create payload as JSON or, when the content
// type says so, YAML.
func parseCreateRequest(body io.Reader, contentType string) (*CreateRequest, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxCreateBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("request body is empty")
	}

	mediaType := contentType
	if parsed, _, mimeErr := mime.ParseMediaType(contentType); mimeErr == nil {
		mediaType = parsed
	}

	var req CreateRequest
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse YAML body: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse JSON body: %w", err)
		}
	}

	return &req, nil
}
