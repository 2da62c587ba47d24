// File: cmd/root_test.go
package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcmd/pkg/concat"
)

// resetFlags restores the package flag variables after a test mutates them.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagOutput = ""
		flagTree = ""
		flagRecursive = false
		flagAll = false
		flagCopy = false
		flagDebug = false
		flagExts = nil
	})
}

func TestBuildConfigDefaults(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	cfg, err := buildConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, filepath.Join(dir, concat.DefaultOutputName), cfg.Output)
	assert.Empty(t, cfg.Tree)
	assert.False(t, cfg.Recursive)
	assert.False(t, cfg.Copy)
	require.NotNil(t, cfg.Exts)
	assert.Contains(t, cfg.Exts, ".go")
}

func TestBuildConfigExplicitOutput(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	flagOutput = filepath.Join(dir, "bundle.md")

	cfg, err := buildConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bundle.md"), cfg.Output)
}

func TestBuildConfigAllDisablesFilter(t *testing.T) {
	resetFlags(t)
	flagAll = true
	flagExts = []string{".py"} // --all wins over --ext

	cfg, err := buildConfig(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg.Exts)
}

func TestBuildConfigExtOverride(t *testing.T) {
	resetFlags(t)
	flagExts = []string{"py", ".C"}

	cfg, err := buildConfig(t.TempDir())
	require.NoError(t, err)

	require.NotNil(t, cfg.Exts)
	assert.Len(t, cfg.Exts, 2)
	assert.Contains(t, cfg.Exts, ".py")
	assert.Contains(t, cfg.Exts, ".c")
}

func TestBuildConfigWildcardExtMeansAll(t *testing.T) {
	resetFlags(t)
	flagExts = []string{".c", "*"}

	cfg, err := buildConfig(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg.Exts)
}

func TestBuildConfigCopyAndTree(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	flagCopy = true
	flagTree = filepath.Join(dir, "tree.txt")
	flagRecursive = true

	cfg, err := buildConfig(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Copy)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, filepath.Join(dir, "tree.txt"), cfg.Tree)
}
