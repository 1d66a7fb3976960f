package recipe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mchmarny/recipe-api/pkg/server"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	s, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore() returned error: %v", err)
	}
	return NewHandler(s, "recipesd", "test")
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var errResp server.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return errResp
}

func TestHandleRoot(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HandleRoot(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Msg     string   `json:"msg"`
		Name    string   `json:"name"`
		Version string   `json:"version"`
		Routes  []string `json:"routes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Msg != "Hello World!" {
		t.Errorf("msg = %q, want %q", resp.Msg, "Hello World!")
	}
	if resp.Name != "recipesd" || resp.Version != "test" {
		t.Errorf("identity = %q/%q, want recipesd/test", resp.Name, resp.Version)
	}
	if len(resp.Routes) == 0 {
		t.Error("routes list is empty")
	}
}

func TestHandleRootUnknownPath(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	h.HandleRoot(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleRootMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.HandleRoot(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodGet {
		t.Errorf("Allow header = %q, want %q", allow, http.MethodGet)
	}
}

func TestHandleSearch(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedLabels []string
	}{
		{
			name:           "keyword match",
			target:         "/search/?keyword=chicken&max_results=10",
			expectedStatus: http.StatusOK,
			expectedLabels: []string{"Chicken Vesuvio", "Chicken Paprikash"},
		},
		{
			name:           "default max results",
			target:         "/search/?keyword=chicken",
			expectedStatus: http.StatusOK,
			expectedLabels: []string{"Chicken Vesuvio", "Chicken Paprikash"},
		},
		{
			name:           "no keyword lists all",
			target:         "/search/",
			expectedStatus: http.StatusOK,
			expectedLabels: []string{
				"Chicken Vesuvio",
				"Chicken Paprikash",
				"Cauliflower and Tofu Curry Recipe",
			},
		},
		{
			name:           "keyword too short",
			target:         "/search/?keyword=ab",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "max results not an integer",
			target:         "/search/?keyword=chicken&max_results=lots",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero max results is empty",
			target:         "/search/?keyword=chicken&max_results=0",
			expectedStatus: http.StatusOK,
			expectedLabels: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			h.HandleSearch(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp SearchResults
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			labels := make([]string, 0, len(resp.Results))
			for _, r := range resp.Results {
				labels = append(labels, r.Label)
			}
			if len(labels) != len(tt.expectedLabels) {
				t.Fatalf("labels = %v, want %v", labels, tt.expectedLabels)
			}
			for i := range labels {
				if labels[i] != tt.expectedLabels[i] {
					t.Errorf("labels[%d] = %q, want %q", i, labels[i], tt.expectedLabels[i])
				}
			}
		})
	}
}

func TestHandleSearchMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/search/", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleRecipeFetch(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/recipe/2", nil)
	rec := httptest.NewRecorder()
	h.HandleRecipe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got Recipe
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != 2 || got.Label != "Chicken Paprikash" {
		t.Errorf("recipe = %+v, want id=2 label=Chicken Paprikash", got)
	}
}

func TestHandleRecipeFetchNotFound(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/recipe/999", nil)
	rec := httptest.NewRecorder()
	h.HandleRecipe(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	errResp := decodeErrorResponse(t, rec)
	if errResp.Message != "Recipe with id 999 not found" {
		t.Errorf("message = %q, want %q", errResp.Message, "Recipe with id 999 not found")
	}
}

func TestHandleRecipeFetchInvalidID(t *testing.T) {
	h := newTestHandler(t)

	for _, target := range []string{"/recipe/", "/recipe/abc"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.HandleRecipe(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHandleRecipeCreate(t *testing.T) {
	h := newTestHandler(t)

	body := `{"label": "Lasagna", "source": "Grandma", "url": "https://example.com/lasagna"}`
	req := httptest.NewRequest(http.MethodPost, "/recipe/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleRecipe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created Recipe
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("created id = %d, want 4", created.ID)
	}
	if created.Label != "Lasagna" || created.Source != "Grandma" {
		t.Errorf("created record = %+v", created)
	}

	// Created record is immediately fetchable.
	req = httptest.NewRequest(http.MethodGet, "/recipe/4", nil)
	rec = httptest.NewRecorder()
	h.HandleRecipe(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("fetch after create status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleRecipeCreateYAML(t *testing.T) {
	h := newTestHandler(t)

	body := "label: Goulash\nsource: Budapest\n"
	req := httptest.NewRequest(http.MethodPost, "/recipe/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/yaml")
	rec := httptest.NewRecorder()
	h.HandleRecipe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created Recipe
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Label != "Goulash" || created.Source != "Budapest" {
		t.Errorf("created record = %+v", created)
	}
}

func TestHandleRecipeCreateInvalid(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name        string
		target      string
		body        string
		contentType string
	}{
		{
			name:        "empty body",
			target:      "/recipe/",
			body:        "",
			contentType: "application/json",
		},
		{
			name:        "malformed json",
			target:      "/recipe/",
			body:        "{not json",
			contentType: "application/json",
		},
		{
			name:        "missing label",
			target:      "/recipe/",
			body:        `{"source": "Somewhere"}`,
			contentType: "application/json",
		},
		{
			name:        "missing source",
			target:      "/recipe/",
			body:        `{"label": "Mystery Dish"}`,
			contentType: "application/json",
		},
		{
			name:        "id in path",
			target:      "/recipe/7",
			body:        `{"label": "Dish", "source": "Somewhere"}`,
			contentType: "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()
			h.HandleRecipe(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleRecipeMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/recipe/1", nil)
	rec := httptest.NewRecorder()
	h.HandleRecipe(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, POST" {
		t.Errorf("Allow header = %q, want %q", allow, "GET, POST")
	}
}
