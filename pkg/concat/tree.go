// File: pkg/concat/tree.go
package concat

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// GenerateTree renders an ASCII-connector listing of the directories and
// matched files under the root, honoring the same recursive flag and
// extension filter as the enumerator. Directories sort before files,
// both alphabetically case-insensitive.
func GenerateTree(cfg *Config, logger *zap.Logger) (string, error) {
	var treeBuilder strings.Builder
	treeBuilder.WriteString(filepath.Base(cfg.Root) + "/\n")

	subtree, err := generateTreeLevel(cfg.Root, cfg, "", logger)
	if err != nil {
		return "", err
	}
	if subtree != "" {
		treeBuilder.WriteString(subtree)
		treeBuilder.WriteString("\n")
	}
	return treeBuilder.String(), nil
}

// WriteTree writes the tree listing to the configured tree path.
func WriteTree(cfg *Config, logger *zap.Logger) error {
	content, err := GenerateTree(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate tree structure", zap.Error(err))
		return fmt.Errorf("failed to generate tree structure: %w", err)
	}
	if err := os.WriteFile(cfg.Tree, []byte(content), 0o644); err != nil {
		logger.Error("Failed to write tree file", zap.String("path", cfg.Tree), zap.Error(err))
		return fmt.Errorf("failed to write tree file: %w", err)
	}
	logger.Debug("Wrote tree structure", zap.String("path", cfg.Tree))
	return nil
}

// generateTreeLevel builds one directory level of the tree. Subdirectories
// are descended into only when the config is recursive; files appear only
// when they pass the extension filter.
func generateTreeLevel(directory string, cfg *Config, prefix string, logger *zap.Logger) (string, error) {
	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return "", fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}

	var kept []os.DirEntry
	for _, entry := range dirEntries {
		entryPath := filepath.Join(directory, entry.Name())
		if entry.IsDir() {
			if cfg.Recursive {
				kept = append(kept, entry)
			}
			continue
		}
		if entry.Type().IsRegular() && cfg.Accepts(entryPath) && !samePath(entryPath, cfg.Output) {
			kept = append(kept, entry)
		}
	}

	// Directories first, then files, alphabetically.
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		return strings.ToLower(kept[i].Name()) < strings.ToLower(kept[j].Name())
	})

	var output []string
	for i, entry := range kept {
		connector := "├── "
		extension := "│   "
		if i == len(kept)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.IsDir() {
			output = append(output, prefix+connector+entry.Name()+"/")
			subtree, err := generateTreeLevel(filepath.Join(directory, entry.Name()), cfg, prefix+extension, logger)
			if err != nil {
				logger.Warn("Failed to generate subtree", zap.String("directory", entry.Name()), zap.Error(err))
				continue
			}
			if subtree != "" {
				output = append(output, subtree)
			}
		} else {
			output = append(output, prefix+connector+entry.Name())
		}
	}

	return strings.Join(output, "\n"), nil
}
