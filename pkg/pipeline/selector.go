// File: fv-tabs/pkg/pipeline/selector.go
package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"fv-tabs/pkg/types"
)

// FluxViewTag enables the flux-view variant of the TypeScript pipeline.
const FluxViewTag = "flux-view"

// Environment is the host state handed to the selector. It is accepted
// and never read.
type Environment interface{}

// Context is the host logging/tracing handle forwarded to the constructor.
type Context interface{}

// Constructor builds a pipeline of type P for a target configuration.
type Constructor[P any] func(ctx context.Context, cfg types.BuildTargetConfig, hostCtx Context) (P, error)

// Selector picks the bundled-library pipeline with flux-view support.
type Selector[P any] struct {
	construct Constructor[P]
}

// NewSelector returns a selector delegating to construct.
func NewSelector[P any](construct Constructor[P]) *Selector[P] {
	return &Selector[P]{construct: construct}
}

// Get requests the pipeline for this project. The constructor's result and
// error are returned as is.
func (s *Selector[P]) Get(ctx context.Context, env Environment, hostCtx Context) (P, error) {
	cfg := TargetConfig()
	zerolog.Ctx(ctx).Debug().
		Str("target", string(cfg.Target)).
		Strs("tags", cfg.WithTags).
		Msg("requesting pipeline")
	return s.construct(ctx, cfg, hostCtx)
}

// TargetConfig returns a new configuration for a flux-view JS bundle.
func TargetConfig() types.BuildTargetConfig {
	return types.BuildTargetConfig{
		Target:   types.TargetJsBundle,
		WithTags: []string{FluxViewTag},
	}
}
