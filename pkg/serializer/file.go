package serializer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads a resource of type T from a local file. The format is
// selected by extension: .json decodes as JSON, everything else as YAML.
func FromFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var out T
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse JSON from %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
		}
	}

	return &out, nil
}
