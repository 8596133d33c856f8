// File: fv-tabs/pkg/template/template.go
package template

import "fv-tabs/pkg/types"

// GenerateFunc writes the packaging files described by a descriptor.
type GenerateFunc func(desc types.PackageDescriptor) error

// Descriptor returns the fv-tabs package descriptor rooted at path.
// Each call builds new maps.
func Descriptor(path string) types.PackageDescriptor {
	return types.PackageDescriptor{
		Path:             path,
		Type:             types.PackageLibrary,
		Name:             "@youwol/fv-tabs",
		Version:          "0.1.3-wip",
		ShortDescription: "Tabs widgets using flux-view.",
		Author:           "greinisch@youwol.com",
		Dependencies: types.Dependencies{
			RunTime: types.RunTimeDeps{
				Load: map[string]string{
					"rxjs":              "^6.5.5",
					"@youwol/flux-view": "^0.1.1",
				},
				Differed:         map[string]string{},
				IncludedInBundle: []string{},
			},
			DevTime: map[string]string{},
		},
		UserGuide: true,
	}
}

// Emit builds the descriptor and passes it to generate once. The error
// from generate is returned unchanged.
func Emit(path string, generate GenerateFunc) (types.PackageDescriptor, error) {
	desc := Descriptor(path)
	return desc, generate(desc)
}
