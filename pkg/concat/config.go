// File: pkg/concat/config.go
package concat

import (
	"path/filepath"
	"strings"
)

// Config holds the configuration for one concatenation run.
// It is built once from command-line flags and never mutated afterwards.
type Config struct {
	Root      string              // Root directory to enumerate (absolute path).
	Output    string              // Destination path for the combined Markdown document.
	Tree      string              // Optional destination path for the directory tree listing; empty disables it.
	Recursive bool                // If true, descend into subdirectories of Root.
	Exts      map[string]struct{} // Accepted lowercase file suffixes (with leading dot); nil means accept every file.
	Copy      bool                // If true, place the written document on the system clipboard.
}

// DefaultExtensions is the built-in allow-list of source file suffixes,
// used when neither --all nor --ext is given.
var DefaultExtensions = []string{
	".c", ".h", ".cpp", ".hpp",
	".cc", ".hh", ".py", ".js",
	".ts", ".java", ".cs",
	".go", ".rs", ".php",
	".html", ".css", ".yml", ".toml",
}

// WildcardExt is accepted inside an --ext list as "match every file",
// equivalent to passing --all.
const WildcardExt = "*"

// DefaultOutputName is the file name used for the output document when
// no --output path is given; it is resolved relative to the root folder.
const DefaultOutputName = "all_sources.md"

// NormalizeExtensions lowercases the given extension list and ensures each
// entry carries a leading dot. It returns nil (accept everything) when the
// list contains the wildcard entry, so a wildcard inside a specific list
// behaves exactly like --all instead of silently widening the filter.
func NormalizeExtensions(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if e == WildcardExt {
			return nil
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}

// DefaultExtensionSet returns the built-in allow-list as a membership set.
func DefaultExtensionSet() map[string]struct{} {
	return NormalizeExtensions(DefaultExtensions)
}

// Accepts reports whether a file path passes the extension filter.
// A nil filter accepts every path.
func (c *Config) Accepts(path string) bool {
	if c.Exts == nil {
		return true
	}
	_, ok := c.Exts[strings.ToLower(filepath.Ext(path))]
	return ok
}
