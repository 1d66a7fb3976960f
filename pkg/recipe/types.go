package recipe

// Recipe is a single catalog entry. The id is assigned by the store at
// insertion time, is unique for the life of the process, and is never
// reassigned or reused.
type Recipe struct {
	ID     int    `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Source string `json:"source" yaml:"source"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
}

// SearchResults wraps an ordered list of matching recipes.
type SearchResults struct {
	Results []Recipe `json:"results" yaml:"results"`
}

// CreateRequest is the payload accepted when creating a recipe.
// Label and Source are required; URL is optional.
type CreateRequest struct {
	Label  string `json:"label" yaml:"label"`
	Source string `json:"source" yaml:"source"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
}
