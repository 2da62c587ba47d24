// File: pkg/concat/clipboard.go
package concat

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// PublishToClipboard reads the just-written output document back in full
// and places its text on the system clipboard. A missing or inaccessible
// clipboard (headless session, no clipboard utility installed) is wrapped
// in ClipboardError so callers can report it separately from file-system
// errors; the document on disk is complete either way.
func PublishToClipboard(outputPath string, logger *zap.Logger) error {
	data, err := os.ReadFile(outputPath)
	if err != nil {
		logger.Error("Failed to read back output document", zap.String("path", outputPath), zap.Error(err))
		return fmt.Errorf("failed to read back output document: %w", err)
	}

	if clipboard.Unsupported {
		return &ClipboardError{Err: errors.New("no system clipboard available on this platform")}
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		logger.Warn("Clipboard write failed", zap.Error(err))
		return &ClipboardError{Err: err}
	}

	logger.Debug("Copied output document to clipboard",
		zap.String("path", outputPath),
		zap.Int("bytes", len(data)))
	return nil
}
