// File: pkg/concat/tree_test.go
package concat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateTreeRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "zeta.go", "package main\n")
	writeFile(t, dir, "sub/helper.go", "package sub\n")

	cfg := testConfig(dir)
	cfg.Recursive = true
	cfg.Exts = NormalizeExtensions([]string{".go"})

	tree, err := GenerateTree(cfg, zap.NewNop())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[0], "/"))
	// Directories sort before files.
	assert.Equal(t, "├── sub/", lines[1])
	assert.Equal(t, "│   └── helper.go", lines[2])
	assert.Equal(t, "├── main.go", lines[3])
	assert.Equal(t, "└── zeta.go", lines[4])
}

func TestGenerateTreeNonRecursiveDoesNotDescend(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "sub/helper.go", "package sub\n")

	cfg := testConfig(dir)
	cfg.Exts = NormalizeExtensions([]string{".go"})

	tree, err := GenerateTree(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Contains(t, tree, "main.go")
	assert.NotContains(t, tree, "sub")
	assert.NotContains(t, tree, "helper.go")
}

func TestGenerateTreeHonorsFilterAndSkipsOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package a\n")
	writeFile(t, dir, "notes.txt", "notes\n")
	writeFile(t, dir, DefaultOutputName, "## stale\n")

	cfg := testConfig(dir)
	cfg.Exts = nil

	tree, err := GenerateTree(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Contains(t, tree, "a.go")
	assert.Contains(t, tree, "notes.txt")
	assert.NotContains(t, tree, DefaultOutputName)
}
