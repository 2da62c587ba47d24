// File: pkg/concat/enumerate.go
package concat

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// FileEntry pairs a file's absolute path with its slash-normalized path
// relative to the root. Entries only live for the duration of the
// rendering loop.
type FileEntry struct {
	Path    string // Absolute path of the file.
	RelPath string // Path relative to the root, with forward slashes.
}

// CollectFiles enumerates the regular files under cfg.Root that pass the
// extension filter, descending into subdirectories only when cfg.Recursive
// is set. The result is sorted case-insensitively by path so two runs over
// the same tree produce byte-identical output regardless of the native
// directory iteration order. An empty result is not an error.
//
// The configured output document is never collected as an input, so a
// second run does not fold the first run's output into itself.
func CollectFiles(cfg *Config, logger *zap.Logger) ([]FileEntry, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, &NotDirectoryError{Path: cfg.Root, Err: err}
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: cfg.Root}
	}

	var entries []FileEntry
	add := func(path string, typ fs.FileMode) {
		if !typ.IsRegular() || !cfg.Accepts(path) {
			return
		}
		if samePath(path, cfg.Output) {
			logger.Debug("Skipping previously written output document", zap.String("path", path))
			return
		}
		relPath, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			relPath = path
		}
		entries = append(entries, FileEntry{Path: path, RelPath: filepath.ToSlash(relPath)})
	}

	if cfg.Recursive {
		err = filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
				return nil
			}
			if !d.IsDir() {
				add(path, d.Type())
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		dirEntries, err := os.ReadDir(cfg.Root)
		if err != nil {
			return nil, err
		}
		for _, d := range dirEntries {
			if !d.IsDir() {
				add(filepath.Join(cfg.Root, d.Name()), d.Type())
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		li, lj := strings.ToLower(entries[i].Path), strings.ToLower(entries[j].Path)
		if li != lj {
			return li < lj
		}
		return entries[i].Path < entries[j].Path
	})

	logger.Debug("Completed file enumeration",
		zap.String("root", cfg.Root),
		zap.Bool("recursive", cfg.Recursive),
		zap.Int("matchedFiles", len(entries)))
	return entries, nil
}

// samePath reports whether two paths name the same file after cleaning.
// Both paths are absolute by the time they are compared here.
func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
