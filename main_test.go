package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fv-tabs/pkg/config"
	"fv-tabs/pkg/pipeline"
)

func newTestParser(t *testing.T, grammar any) *kong.Kong {
	t.Helper()
	parser, err := kong.New(grammar,
		kong.Vars{"default_dir": config.DefaultProjectDir},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	return parser
}

func TestParse_GenerateDirDefault(t *testing.T) {
	t.Setenv("FVTABS_DIR", "")
	require.NoError(t, os.Unsetenv("FVTABS_DIR"))
	var args struct {
		Generate GenerateCmd `cmd:""`
		Pipeline PipelineCmd `cmd:""`
	}
	parser := newTestParser(t, &args)

	_, err := parser.Parse([]string{"generate"})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, args.Generate.Dir)
}

func TestParse_PipelineHasNoDirFlag(t *testing.T) {
	var args struct {
		Generate GenerateCmd `cmd:""`
		Pipeline PipelineCmd `cmd:""`
	}
	parser := newTestParser(t, &args)

	_, err := parser.Parse([]string{"pipeline", "--dir", "somewhere"})
	assert.Error(t, err)
}

func TestPipelineCmd_Run(t *testing.T) {
	var out bytes.Buffer
	cmd := &PipelineCmd{}

	err := cmd.Run(context.Background(), &Globals{Logger: zerolog.Nop(), Out: &out})
	require.NoError(t, err)

	var plan pipeline.Plan
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &plan))
	assert.Equal(t, pipeline.TargetConfig(), plan.Config)
	assert.NotEmpty(t, plan.Steps)
}

func TestGenerateCmd_Run(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	cmd := &GenerateCmd{Dir: dir}

	err := cmd.Run(context.Background(), &Globals{Logger: zerolog.Nop(), Out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Generated @youwol/fv-tabs@0.1.3-wip")

	_, err = os.Stat(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "src", "auto-generated.ts"))
	require.NoError(t, err)
}

func TestGenerateCmd_Descriptor(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	path := filepath.Join(dir, "template.yaml")
	content := "type: Library\nname: \"@youwol/fv-tree\"\nversion: 0.2.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cmd := &GenerateCmd{Descriptor: path}
	err := cmd.Run(context.Background(), &Globals{Logger: zerolog.Nop(), Out: &out})
	require.NoError(t, err)

	ts, err := os.ReadFile(filepath.Join(dir, "src", "auto-generated.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(ts), "apiVersion:'02'")
}
