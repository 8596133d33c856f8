package generator

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"fv-tabs/pkg/types"
	"fv-tabs/pkg/utils"
)

// AutoGenerated renders src/auto-generated.ts for desc.
func AutoGenerated(desc types.PackageDescriptor) (string, error) {
	version, err := semver.NewVersion(desc.Version)
	if err != nil {
		return "", fmt.Errorf("version '%s' of %s is not a valid semver: %w", desc.Version, desc.Name, err)
	}
	externals, err := Externals(desc.Dependencies.RunTime)
	if err != nil {
		return "", err
	}

	runTime := desc.Dependencies.RunTime
	runTimeJSON, err := marshalTS(map[string]any{
		"load":             orEmpty(runTime.Load),
		"differed":         orEmpty(runTime.Differed),
		"includedInBundle": orEmptySlice(runTime.IncludedInBundle),
	})
	if err != nil {
		return "", err
	}
	externalsJSON, err := marshalTS(externals)
	if err != nil {
		return "", err
	}

	scope, base := utils.SplitScope(desc.Name)
	if scope == "" {
		scope = "youwol"
	}

	var b strings.Builder
	b.WriteString("// This file is auto-generated.\n")
	b.WriteString("// Do not edit this file manually.\n\n")
	fmt.Fprintf(&b, "const runTimeDependencies = %s\n", runTimeJSON)
	fmt.Fprintf(&b, "const externals = %s\n", externalsJSON)
	b.WriteString("export const setup = {\n")
	fmt.Fprintf(&b, "    name:%s,\n", tsString(desc.Name))
	fmt.Fprintf(&b, "    assetId:%s,\n", tsString(utils.AssetID(desc.Name)))
	fmt.Fprintf(&b, "    version:%s,\n", tsString(desc.Version))
	fmt.Fprintf(&b, "    shortDescription:%s,\n", tsString(desc.ShortDescription))
	fmt.Fprintf(&b, "    developerDocumentation:%s,\n", tsString(docBaseURL+desc.Name))
	fmt.Fprintf(&b, "    npmPackage:%s,\n", tsString(npmBaseURL+desc.Name))
	fmt.Fprintf(&b, "    sourceGithub:%s,\n", tsString(githubBaseURL+scope+"/"+base))
	if desc.UserGuide {
		fmt.Fprintf(&b, "    userGuide:%s,\n", tsString(guideBaseURL+desc.Name))
	}
	fmt.Fprintf(&b, "    apiVersion:%s,\n", tsString(APIVersion(version)))
	b.WriteString("    runTimeDependencies,\n")
	b.WriteString("    externals\n")
	b.WriteString("}\n")
	return b.String(), nil
}

// Externals maps each runtime dependency to the global symbol its bundle
// exposes, e.g. rxjs ^6.5.5 to rxjs_APIv6.
func Externals(deps types.RunTimeDeps) (map[string]any, error) {
	out := make(map[string]any)
	all := mergeDeps(deps.Load, deps.Differed)
	for _, name := range slices.Sorted(maps.Keys(all)) {
		lower, err := LowerBound(all[name])
		if err != nil {
			return nil, fmt.Errorf("dependency %s: invalid range '%s': %w", name, all[name], err)
		}
		symbol := fmt.Sprintf("%s_APIv%s", name, APIVersion(lower))
		out[name] = symbol
		if name == "rxjs" {
			out["rxjs/operators"] = map[string]any{
				"commonjs":  "rxjs/operators",
				"commonjs2": "rxjs/operators",
				"root":      []string{symbol, "operators"},
			}
		}
	}
	return out, nil
}

var tsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// tsString renders s as a single-quoted TypeScript string literal.
func tsString(s string) string {
	return "'" + tsEscaper.Replace(s) + "'"
}

// marshalTS renders v as a TypeScript object literal. encoding/json sorts
// map keys, which keeps the output stable between runs.
func marshalTS(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
