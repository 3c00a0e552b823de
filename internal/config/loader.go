package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the world catalog.
// Search order: customPath -> ~/.survivor/worlds.yaml -> ./configs/worlds.yaml -> embedded default
//
// A file that exists but cannot be parsed or fails validation is a hard
// error at every step: the catalog drives all run progression, so a
// half-read table must never silently fall back to a different one.
// Only a missing file moves the search to the next location.
func Load(customPath string) (WorldCatalog, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	if userPath := userCatalogPath(); userPath != "" {
		cat, err := loadFile(userPath)
		if err == nil {
			return cat, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return WorldCatalog{}, err
		}
	}

	cat, err := loadFile(filepath.Join("configs", "worlds.yaml"))
	if err == nil {
		return cat, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return WorldCatalog{}, err
	}

	// Use embedded default YAML
	var embedded WorldCatalog
	if err := yaml.Unmarshal(defaultWorldsYAML, &embedded); err != nil {
		return DefaultCatalog(), nil // Fallback to hardcoded if embed fails
	}
	if err := embedded.Validate(); err != nil {
		return DefaultCatalog(), nil
	}
	return embedded, nil
}

// loadFile reads, parses and validates a catalog file.
func loadFile(path string) (WorldCatalog, error) {
	var cat WorldCatalog

	data, err := os.ReadFile(path)
	if err != nil {
		return cat, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return cat, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return cat, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return cat, nil
}

// userCatalogPath returns the path to the user catalog file, or empty if
// the home directory is unavailable.
func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survivor", "worlds.yaml")
}
