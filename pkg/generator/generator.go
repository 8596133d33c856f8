// File: fv-tabs/pkg/generator/generator.go
package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"

	"fv-tabs/pkg/config"
	"fv-tabs/pkg/types"
)

const (
	docBaseURL    = "https://platform.youwol.com/applications/@youwol/cdn-explorer/latest?package="
	npmBaseURL    = "https://www.npmjs.com/package/"
	githubBaseURL = "https://github.com/"
	guideBaseURL  = "https://l.youwol.com/doc/"
)

// Files writes package.json and the auto-generated setup module of a package.
type Files struct {
	logger zerolog.Logger
}

// New returns a generator logging to logger.
func New(logger zerolog.Logger) *Files {
	return &Files{logger: logger}
}

// Generate validates desc and writes its packaging files under desc.Path.
func (g *Files) Generate(desc types.PackageDescriptor) error {
	log := g.logger.With().Str("package", desc.Name).Str("path", desc.Path).Logger()

	if err := Validate(desc); err != nil {
		return err
	}
	// Render before touching disk so a bad descriptor leaves the project as is.
	content, err := AutoGenerated(desc)
	if err != nil {
		return err
	}

	if err := writePackageJSON(desc); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.PackageJSONFile, err)
	}
	log.Info().Str("file", config.PackageJSONFile).Msg("generated")

	target := filepath.Join(desc.Path, config.AutoGeneratedFile)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create source directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.AutoGeneratedFile, err)
	}
	log.Info().Str("file", config.AutoGeneratedFile).Msg("generated")
	return nil
}

// Validate checks the package name, version and every dependency range.
func Validate(desc types.PackageDescriptor) error {
	if desc.Name == "" {
		return errors.New("package name is required")
	}
	if _, err := semver.NewVersion(desc.Version); err != nil {
		return fmt.Errorf("version '%s' of %s is not a valid semver: %w", desc.Version, desc.Name, err)
	}
	deps := []map[string]string{
		desc.Dependencies.RunTime.Load,
		desc.Dependencies.RunTime.Differed,
		desc.Dependencies.DevTime,
	}
	for _, set := range deps {
		for _, name := range slices.Sorted(maps.Keys(set)) {
			if _, err := semver.NewConstraint(set[name]); err != nil {
				return fmt.Errorf("dependency %s: invalid range '%s': %w", name, set[name], err)
			}
			if _, err := LowerBound(set[name]); err != nil {
				return fmt.Errorf("dependency %s: invalid range '%s': %w", name, set[name], err)
			}
		}
	}
	return nil
}

// APIVersion returns the API version tag of a package version: the major
// number once past 1.0, otherwise '0' followed by the minor number.
func APIVersion(v *semver.Version) string {
	if v.Major() > 0 {
		return fmt.Sprintf("%d", v.Major())
	}
	return fmt.Sprintf("0%d", v.Minor())
}

// LowerBound returns the smallest version named by a range such as
// '^6.5.5', '~1.2', '>= 2.0.0 <3.0.0' or '6.x'. Ranges with no lower
// bound ('*', '<7.0.0') start at 0.0.0.
func LowerBound(versionRange string) (*semver.Version, error) {
	first := strings.TrimSpace(strings.Split(versionRange, "||")[0])
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return nil, errors.New("empty version range")
	}
	bound := fields[0]
	// An operator may be separated from its version: '>= 6.5.5'.
	if strings.Trim(bound, operatorChars) == "" && len(fields) > 1 {
		bound += fields[1]
	}

	op := bound[:len(bound)-len(strings.TrimLeft(bound, operatorChars))]
	if strings.HasPrefix(op, "<") || strings.HasPrefix(op, "!") {
		return semver.New(0, 0, 0, "", ""), nil
	}
	return semver.NewVersion(fillWildcards(strings.TrimLeft(bound[len(op):], "vV")))
}

const operatorChars = "^~<>=!"

// fillWildcards turns '6.x', '6.*' or '*' into a concrete version by
// zeroing the wildcard segment and everything after it.
func fillWildcards(v string) string {
	parts := strings.Split(v, ".")
	for i, p := range parts {
		if p == "*" || p == "x" || p == "X" || p == "" {
			parts = parts[:i]
			break
		}
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return strings.Join(parts, ".")
}

func writePackageJSON(desc types.PackageDescriptor) error {
	raw, err := config.LoadPackageJSON(desc.Path)
	if err != nil {
		return err
	}

	owned := types.PackageJSON{
		Name:            desc.Name,
		Version:         desc.Version,
		Description:     desc.ShortDescription,
		Author:          desc.Author,
		Main:            fmt.Sprintf("dist/%s.js", desc.Name),
		Types:           "src/index.ts",
		Dependencies:    mergeDeps(desc.Dependencies.RunTime.Load, desc.Dependencies.RunTime.Differed),
		DevDependencies: mergeDeps(desc.Dependencies.DevTime),
	}
	data, err := json.Marshal(owned)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	maps.Copy(raw, fields)
	return config.SavePackageJSON(desc.Path, raw)
}

func mergeDeps(sets ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, set := range sets {
		maps.Copy(out, set)
	}
	return out
}
