// File: cmd/root.go
package cmd

import (
	"path/filepath"

	"srcmd/pkg/concat"
	"srcmd/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var (
	flagOutput    string
	flagTree      string
	flagRecursive bool
	flagAll       bool
	flagCopy      bool
	flagDebug     bool
	flagExts      []string
)

// RootCmd is the base command; invoking srcmd with a folder argument runs
// the concatenation directly, there is no separate subcommand for it.
var RootCmd = &cobra.Command{
	Use:   "srcmd <folder>",
	Short: "srcmd concatenates source files into one Markdown document",
	Long: `srcmd walks a folder, selects files matching an extension filter, and
concatenates their contents into a single Markdown document with per-file
headings and fenced code blocks, optionally copying the result to the
system clipboard.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDebug {
			l, err := logging.Setup(true, appName, appVersion)
			if err != nil {
				return err
			}
			logger = l
		}

		cfg, err := buildConfig(args[0])
		if err != nil {
			return err
		}
		return concat.Run(cfg, logger)
	},
}

// buildConfig resolves the flag values into an immutable run configuration.
func buildConfig(folder string) (*concat.Config, error) {
	root, err := filepath.Abs(folder)
	if err != nil {
		return nil, err
	}

	output := flagOutput
	if output == "" {
		output = filepath.Join(root, concat.DefaultOutputName)
	} else if output, err = filepath.Abs(output); err != nil {
		return nil, err
	}

	tree := flagTree
	if tree != "" {
		if tree, err = filepath.Abs(tree); err != nil {
			return nil, err
		}
	}

	var exts map[string]struct{}
	switch {
	case flagAll:
		exts = nil
	case len(flagExts) > 0:
		exts = concat.NormalizeExtensions(flagExts)
	default:
		exts = concat.DefaultExtensionSet()
	}

	return &concat.Config{
		Root:      root,
		Output:    output,
		Tree:      tree,
		Recursive: flagRecursive,
		Exts:      exts,
		Copy:      flagCopy,
	}, nil
}

// Execute wires the provided logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: <folder>/all_sources.md)")
	RootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "Recurse into subdirectories")
	RootCmd.Flags().BoolVar(&flagAll, "all", false, "Include ALL files (ignore extensions)")
	RootCmd.Flags().StringArrayVar(&flagExts, "ext", nil, "File extension to include (e.g. --ext .c --ext .h); overrides the default list")
	RootCmd.Flags().BoolVarP(&flagCopy, "copy", "c", false, "Copy the output document to the system clipboard")
	RootCmd.Flags().StringVar(&flagTree, "tree", "", "Also write a directory tree listing of the matched files to this path")
	RootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}
