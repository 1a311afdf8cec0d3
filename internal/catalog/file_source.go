package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileSource reads a catalog fixture from disk. YAML is a superset of JSON, so both work.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the fixture at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchCatalog reads and parses the fixture.
func (f *FileSource) FetchCatalog(_ context.Context) (*Catalog, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadFixture, err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes a catalog with top-level "weapons" and "contenttiers" keys.
func ParseFixture(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseFixture, err)
	}
	return &cat, nil
}
