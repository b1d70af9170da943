package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML catalog definition and builds the catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse menu definition: %w", err)
	}
	return New(def)
}

// Load reads a YAML menu file from disk and builds the catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
