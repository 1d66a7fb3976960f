package recipe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/mchmarny/recipe-api/pkg/errors"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	require.NoError(t, err)
	return s
}

func TestSearch(t *testing.T) {
	s := newSeededStore(t)

	tests := []struct {
		name       string
		keyword    string
		maxResults int
		expected   []string
	}{
		{
			name:       "keyword matches multiple in store order",
			keyword:    "chicken",
			maxResults: 10,
			expected:   []string{"Chicken Vesuvio", "Chicken Paprikash"},
		},
		{
			name:       "case folded match",
			keyword:    "CHICKEN",
			maxResults: 10,
			expected:   []string{"Chicken Vesuvio", "Chicken Paprikash"},
		},
		{
			name:       "substring match mid label",
			keyword:    "tofu",
			maxResults: 10,
			expected:   []string{"Cauliflower and Tofu Curry Recipe"},
		},
		{
			name:       "no match",
			keyword:    "sushi",
			maxResults: 10,
			expected:   []string{},
		},
		{
			name:       "empty keyword lists all",
			keyword:    "",
			maxResults: 10,
			expected: []string{
				"Chicken Vesuvio",
				"Chicken Paprikash",
				"Cauliflower and Tofu Curry Recipe",
			},
		},
		{
			name:       "truncated to max results",
			keyword:    "chicken",
			maxResults: 1,
			expected:   []string{"Chicken Vesuvio"},
		},
		{
			name:       "empty keyword truncated",
			keyword:    "",
			maxResults: 2,
			expected:   []string{"Chicken Vesuvio", "Chicken Paprikash"},
		},
		{
			name:       "zero max results yields nothing",
			keyword:    "chicken",
			maxResults: 0,
			expected:   []string{},
		},
		{
			name:       "negative max results yields nothing",
			keyword:    "chicken",
			maxResults: -5,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := s.Search(tt.keyword, tt.maxResults)

			labels := make([]string, 0, len(results))
			for _, r := range results {
				labels = append(labels, r.Label)
			}
			assert.Equal(t, tt.expected, labels)
		})
	}
}

func TestSearchIsReadOnly(t *testing.T) {
	s := newSeededStore(t)

	before := s.List()
	_ = s.Search("chicken", 10)
	_ = s.Search("", 0)
	after := s.List()

	assert.Equal(t, before, after)
}

func TestFetchByID(t *testing.T) {
	s := newSeededStore(t)

	rec, err := s.FetchByID(2)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.ID)
	assert.Equal(t, "Chicken Paprikash", rec.Label)
}

func TestFetchByIDNotFound(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.FetchByID(999)
	require.Error(t, err)

	var structured *apierrors.StructuredError
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, apierrors.ErrCodeNotFound, structured.Code)
	assert.Equal(t, "Recipe with id 999 not found", structured.Message)
	assert.Equal(t, 999, structured.Context["id"])
}

func TestCreateThenFetchAndSearch(t *testing.T) {
	s := newSeededStore(t)

	created := s.Create("Lasagna", "Grandma", "https://example.com/lasagna")
	require.Equal(t, 4, created.ID)

	fetched, err := s.FetchByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	results := s.Search("Lasagna", 10)
	require.Len(t, results, 1)
	assert.Equal(t, created, results[0])
}
