// File: pkg/concat/concat.go

// Package concat implements the concatenation pipeline: enumerate the
// files under a root folder that pass an extension filter, render them
// into one Markdown document with per-file headings and fenced blocks,
// and optionally publish the result to the system clipboard. The whole
// pipeline is synchronous and single-threaded; each stage is terminal on
// failure with no retries and no rollback of earlier stages.
package concat

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Run executes the pipeline for one configuration: enumerate, write the
// document, write the optional tree listing, then the optional clipboard
// publish. It returns ErrNoMatches when the filter matched nothing, in
// which case no output file has been touched.
func Run(cfg *Config, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting concatenation",
		zap.String("root", cfg.Root),
		zap.Bool("recursive", cfg.Recursive),
		zap.String("output", cfg.Output))

	entries, err := CollectFiles(cfg, logger)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoMatches
	}

	count, err := WriteDocument(entries, cfg.Output, logger)
	if err != nil {
		return err
	}

	// The write has succeeded at this point; report it before the optional
	// stages so a clipboard failure is never mistaken for a failed write.
	color.Green("Wrote %d files into: %s", count, cfg.Output)

	if cfg.Tree != "" {
		if err := WriteTree(cfg, logger); err != nil {
			return err
		}
	}

	if cfg.Copy {
		if err := PublishToClipboard(cfg.Output, logger); err != nil {
			return err
		}
		fmt.Println("Copied output to clipboard.")
	}

	logger.Info("Concatenation completed",
		zap.Int("totalFiles", count),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
