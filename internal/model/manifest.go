package model

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest names the serialized classifier artifact for each disease and pins
// the feature vector length the artifact was trained on.
type Manifest struct {
	Diabetes ManifestEntry `yaml:"diabetes"`
	Heart    ManifestEntry `yaml:"heart"`
}

type ManifestEntry struct {
	Path     string `yaml:"path"`
	Features int    `yaml:"features"`
}

// LoadManifest reads the model manifest. Relative artifact paths are resolved
// against the manifest's own directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model manifest %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for name, entry := range map[string]*ManifestEntry{"diabetes": &m.Diabetes, "heart": &m.Heart} {
		if entry.Path == "" {
			return nil, fmt.Errorf("model manifest %s is missing the %s artifact path", path, name)
		}
		if entry.Features <= 0 {
			return nil, fmt.Errorf("model manifest %s has no feature count for %s", path, name)
		}
		if !filepath.IsAbs(entry.Path) {
			entry.Path = filepath.Join(base, entry.Path)
		}
	}
	return &m, nil
}
