package pipeline

import (
	"context"
	"errors"
	"fmt"

	"fv-tabs/pkg/types"
)

// ErrUnsupportedTarget is returned for a target kind with no known pipeline.
var ErrUnsupportedTarget = errors.New("unsupported target")

// Steps of the TypeScript/Webpack/NPM pipeline, in execution order.
var jsBundleSteps = []string{
	"init",
	"sync-deps",
	"build-dev",
	"build-prod",
	"test",
	"test-coverage",
	"doc",
	"cdn-local",
	"publish-npm",
}

// Plan is a dry-run description of the pipeline a host would build.
type Plan struct {
	Config types.BuildTargetConfig `yaml:"config"`
	Steps  []string                `yaml:"steps"`
}

// DescribePlan is a Constructor that resolves a configuration to its step
// list without running anything.
func DescribePlan(ctx context.Context, cfg types.BuildTargetConfig, _ Context) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch cfg.Target {
	case types.TargetJsBundle:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTarget, cfg.Target)
	}
	return &Plan{
		Config: types.BuildTargetConfig{
			Target:   cfg.Target,
			WithTags: append([]string(nil), cfg.WithTags...),
		},
		Steps: append([]string(nil), jsBundleSteps...),
	}, nil
}
