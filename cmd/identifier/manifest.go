package main

import (
	"fmt"
	"os"

	"github.com/zero-day-ai/identifier"
	"gopkg.in/yaml.v3"
)

// manifest is a list of persisted identifiers. JSON manifests decode through
// the same YAML parser.
type manifest struct {
	Identifiers []*identifier.Identifier `yaml:"identifiers"`
}

// loadManifest reads the identifiers listed in the manifest at path.
func loadManifest(path string) ([]*identifier.Identifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return m.Identifiers, nil
}
