// File: pkg/types/types.go
package types

// TargetKind classifies the artifact a pipeline builds.
type TargetKind string

const (
	// TargetJsBundle is a bundled JavaScript library.
	TargetJsBundle TargetKind = "JsBundle"
)

// BuildTargetConfig is handed to the host pipeline constructor.
type BuildTargetConfig struct {
	Target   TargetKind `json:"target" yaml:"target"`
	WithTags []string   `json:"withTags" yaml:"withTags"`
}

// PackageType is the kind of package a template describes.
type PackageType string

const (
	PackageLibrary     PackageType = "Library"
	PackageApplication PackageType = "Application"
)

// RunTimeDeps lists the dependencies needed when the package executes.
type RunTimeDeps struct {
	Load             map[string]string `json:"load" yaml:"load"`
	Differed         map[string]string `json:"differed" yaml:"differed"`
	IncludedInBundle []string          `json:"includedInBundle" yaml:"includedInBundle"`
}

// Dependencies groups runtime and development dependencies.
type Dependencies struct {
	RunTime RunTimeDeps       `json:"runTime" yaml:"runTime"`
	DevTime map[string]string `json:"devTime" yaml:"devTime"`
}

// PackageDescriptor is the static metadata of a publishable package.
type PackageDescriptor struct {
	Path             string       `json:"path" yaml:"path"`
	Type             PackageType  `json:"type" yaml:"type"`
	Name             string       `json:"name" yaml:"name"`
	Version          string       `json:"version" yaml:"version"`
	ShortDescription string       `json:"shortDescription" yaml:"shortDescription"`
	Author           string       `json:"author" yaml:"author"`
	Dependencies     Dependencies `json:"dependencies" yaml:"dependencies"`
	UserGuide        bool         `json:"userGuide" yaml:"userGuide"`
}

// PackageJSON is the subset of package.json owned by the generator.
// Other keys of an existing file are preserved on regeneration.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Author          string            `json:"author"`
	Main            string            `json:"main"`
	Types           string            `json:"types"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}
