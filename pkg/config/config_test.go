package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fv-tabs/pkg/types"
)

func TestLoadDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.yaml")
	content := `type: Library
name: "@youwol/fv-tree"
version: 0.2.0
shortDescription: Tree views.
author: dev@youwol.com
dependencies:
  runTime:
    load:
      rxjs: ^6.5.5
userGuide: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	desc, err := LoadDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, dir, desc.Path)
	assert.Equal(t, types.PackageLibrary, desc.Type)
	assert.Equal(t, "@youwol/fv-tree", desc.Name)
	assert.Equal(t, "0.2.0", desc.Version)
	assert.Equal(t, map[string]string{"rxjs": "^6.5.5"}, desc.Dependencies.RunTime.Load)
	assert.NotNil(t, desc.Dependencies.DevTime)
	assert.True(t, desc.UserGuide)
}

func TestLoadDescriptor_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0644))

	_, err := LoadDescriptor(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse descriptor")
}

func TestPackageJSON_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	raw, err := LoadPackageJSON(dir)
	require.NoError(t, err)
	assert.Empty(t, raw)

	raw["name"] = "@youwol/fv-tabs"
	require.NoError(t, SavePackageJSON(dir, raw))

	loaded, err := LoadPackageJSON(dir)
	require.NoError(t, err)
	assert.Equal(t, "@youwol/fv-tabs", loaded["name"])
}
