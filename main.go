// File: fv-tabs/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"fv-tabs/pkg/config"
	"fv-tabs/pkg/generator"
	"fv-tabs/pkg/logger"
	"fv-tabs/pkg/pipeline"
	"fv-tabs/pkg/template"
)

var (
	version = "dev"
	cli     struct {
		Generate GenerateCmd      `cmd:"" help:"Generate package.json and src/auto-generated.ts"`
		Pipeline PipelineCmd      `cmd:"" help:"Print the build pipeline requested for this project"`
		Debug    bool             `help:"Enable debug logging." env:"FVTABS_DEBUG"`
		Version  kong.VersionFlag `help:"Print version and exit."`
	}
)

// Globals are shared by every command.
type Globals struct {
	Logger zerolog.Logger
	Out    io.Writer
}

// GenerateCmd runs the template emitter against a project directory.
type GenerateCmd struct {
	Dir        string `help:"Project directory." default:"${default_dir}" env:"FVTABS_DIR" type:"path"`
	Descriptor string `help:"YAML descriptor to generate instead of the built-in fv-tabs one." type:"existingfile"`
}

func (c *GenerateCmd) Run(ctx context.Context, globals *Globals) error {
	gen := generator.New(globals.Logger)

	if c.Descriptor != "" {
		desc, err := config.LoadDescriptor(c.Descriptor)
		if err != nil {
			return fmt.Errorf("could not load descriptor: %w", err)
		}
		if err := gen.Generate(*desc); err != nil {
			return err
		}
		fmt.Fprintf(globals.Out, "Generated %s@%s in %s\n", desc.Name, desc.Version, desc.Path)
		return nil
	}

	desc, err := template.Emit(c.Dir, gen.Generate)
	if err != nil {
		return err
	}
	fmt.Fprintf(globals.Out, "Generated %s@%s in %s\n", desc.Name, desc.Version, desc.Path)
	return nil
}

// PipelineCmd shows the pipeline the selector asks the host for.
type PipelineCmd struct{}

func (c *PipelineCmd) Run(ctx context.Context, globals *Globals) error {
	selector := pipeline.NewSelector(pipeline.DescribePlan)
	// The CLI runs outside the host, so there is no environment to forward.
	plan, err := selector.Get(ctx, nil, globals.Logger)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(globals.Out)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return err
	}
	return enc.Close()
}

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("fv-tabs"),
		kong.Description("Packaging template and pipeline selection for @youwol/fv-tabs."),
		kong.Vars{
			"version":     version,
			"default_dir": config.DefaultProjectDir,
		})

	log := logger.Setup(cli.Debug)
	ctx = log.WithContext(ctx)
	cmd.BindTo(ctx, (*context.Context)(nil))

	err := cmd.Run(&Globals{Logger: log, Out: os.Stdout})
	cmd.FatalIfErrorf(err)
}
