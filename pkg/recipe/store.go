package recipe

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/seed.yaml
var seedFS embed.FS

// seedFile is the shape of the embedded seed data.
type seedFile struct {
	Recipes []Recipe `yaml:"recipes"`
}

// Store holds the authoritative, insertion-ordered sequence of recipe
// records for the life of the process. All access goes through the lock.
// Ids come from a counter owned by the store and advanced under the write
// lock, so concurrent inserts can never produce duplicate ids.
type Store struct {
	mu      sync.RWMutex
	records []Recipe
	nextID  int
}

// NewStore returns a store pre-populated with the embedded seed records.
func NewStore() (*Store, error) {
	data, err := seedFS.ReadFile("data/seed.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed data: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	s := &Store{
		records: make([]Recipe, 0, len(seed.Recipes)),
	}

	for i, r := range seed.Recipes {
		if r.Label == "" {
			return nil, fmt.Errorf("seed record %d has an empty label", i)
		}
		// Seed ids must be dense and ordered so the counter can pick up
		// exactly where the seed set ends.
		if r.ID != i+1 {
			return nil, fmt.Errorf("seed record %q has id %d, want %d", r.Label, r.ID, i+1)
		}
		s.records = append(s.records, r)
	}

	s.nextID = len(s.records)
	storeRecords.Set(float64(len(s.records)))

	return s, nil
}

// List returns a snapshot of all records in insertion order. The returned
// slice is owned by the caller.
func (s *Store) List() []Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Recipe, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the current number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Create assigns the next id, appends a new record, and returns it. The
// store grows by exactly one record; no other state changes.
func (s *Store) Create(label, source, url string) Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	r := Recipe{
		ID:     s.nextID,
		Label:  label,
		Source: source,
		URL:    url,
	}
	s.records = append(s.records, r)

	recipesCreated.Inc()
	storeRecords.Set(float64(len(s.records)))

	return r
}
