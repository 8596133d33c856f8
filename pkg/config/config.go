// File: fv-tabs/pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fv-tabs/pkg/types"
)

const (
	// PackageJSONFile is the name of the npm manifest.
	PackageJSONFile = "package.json"
	// AutoGeneratedFile holds the setup module consumed by the library at runtime.
	AutoGeneratedFile = "src/auto-generated.ts"
	// DefaultProjectDir is used when no project directory is given.
	DefaultProjectDir = "."
)

// LoadPackageJSON reads package.json from dir into a generic map so keys
// the generator does not own survive a rewrite. A missing file yields an
// empty map.
func LoadPackageJSON(dir string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(dir, PackageJSONFile))
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]any), nil
	}
	if err != nil {
		return nil, err
	}
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", PackageJSONFile, err)
	}
	return raw, nil
}

// SavePackageJSON writes the manifest to dir/package.json.
func SavePackageJSON(dir string, raw map[string]any) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, PackageJSONFile), append(data, '\n'), 0644)
}

// LoadDescriptor reads a package descriptor from a YAML file. A relative or
// empty path field is resolved against the file's directory.
func LoadDescriptor(path string) (*types.PackageDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var desc types.PackageDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("could not parse descriptor %s: %w", path, err)
	}
	if !filepath.IsAbs(desc.Path) {
		desc.Path = filepath.Join(filepath.Dir(path), desc.Path)
	}
	// A package might not have any dependencies.
	if desc.Dependencies.RunTime.Load == nil {
		desc.Dependencies.RunTime.Load = make(map[string]string)
	}
	if desc.Dependencies.RunTime.Differed == nil {
		desc.Dependencies.RunTime.Differed = make(map[string]string)
	}
	if desc.Dependencies.DevTime == nil {
		desc.Dependencies.DevTime = make(map[string]string)
	}
	return &desc, nil
}
