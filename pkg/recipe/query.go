package recipe

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	apierrors "github.com/mchmarny/recipe-api/pkg/errors"
)

// DefaultMaxResults caps search responses when the caller does not specify
// a limit.
const DefaultMaxResults = 10

// Search returns, in store order, the records whose label contains keyword
// under Unicode case folding, truncated to the first maxResults matches.
// An empty keyword matches every record. A non-positive maxResults yields
// an empty result set rather than an unbounded one.
func (s *Store) Search(keyword string, maxResults int) []Recipe {
	searchesTotal.Inc()

	if maxResults <= 0 {
		return []Recipe{}
	}

	records := s.List()

	if keyword == "" {
		if len(records) > maxResults {
			records = records[:maxResults]
		}
		return records
	}

	// Matchers are not safe for concurrent use; construct per call.
	m := search.New(language.Und, search.IgnoreCase)

	out := make([]Recipe, 0, min(maxResults, len(records)))
	for _, r := range records {
		if start, _ := m.IndexString(r.Label, keyword); start >= 0 {
			out = append(out, r)
			if len(out) == maxResults {
				break
			}
		}
	}
	return out
}

// FetchByID returns the record with the given id, scanning in store order.
// When no record matches it returns a NOT_FOUND structured error naming
// the requested id.
func (s *Store) FetchByID(id int) (Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}

	lookupMisses.Inc()
	return Recipe{}, apierrors.NewWithContext(
		apierrors.ErrCodeNotFound,
		fmt.Sprintf("Recipe with id %d not found", id),
		map[string]any{"id": id},
	)
}
