// File: pkg/concat/render.go
package concat

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// renderEntry formats one file as a Markdown section: a heading with the
// path relative to the root, a fenced block holding the file's text with
// trailing newlines trimmed to exactly one, and a blank separator line.
func renderEntry(entry FileEntry, logger *zap.Logger) (string, error) {
	fileBytes, err := os.ReadFile(entry.Path)
	if err != nil {
		logger.Error("Failed to read file", zap.String("filePath", entry.Path), zap.Error(err))
		return "", fmt.Errorf("error reading file %s: %w", entry.Path, err)
	}

	text := decodeText(fileBytes, entry.Path, logger)

	var b strings.Builder
	b.WriteString("## " + entry.RelPath + "\n")
	b.WriteString("```\n")
	b.WriteString(strings.TrimRight(text, "\n"))
	b.WriteString("\n```\n\n")
	return b.String(), nil
}

// decodeText interprets raw file bytes as UTF-8. Invalid byte sequences
// are replaced with U+FFFD instead of aborting the run, so binary or
// mis-encoded files still produce a best-effort section.
func decodeText(data []byte, path string, logger *zap.Logger) string {
	if utf8.Valid(data) {
		return string(data)
	}
	logger.Debug("File is not valid UTF-8, substituting undecodable bytes",
		zap.String("filePath", path))
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// WriteDocument renders every entry in order and writes the combined
// Markdown document to the output path, overwriting any existing file.
// The output handle is closed on every exit path, including a read error
// on an individual source file. It returns the number of files written.
func WriteDocument(entries []FileEntry, outputPath string, logger *zap.Logger) (int, error) {
	logger.Debug("Writing combined document", zap.String("outputFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(cerr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, entry := range entries {
		section, err := renderEntry(entry, logger)
		if err != nil {
			return 0, err
		}
		if _, err := writer.WriteString(section); err != nil {
			logger.Error("Failed to write section",
				zap.String("file", outputPath),
				zap.String("sectionPath", entry.RelPath),
				zap.Error(err))
			return 0, fmt.Errorf("failed to write section for %s: %w", entry.RelPath, err)
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return 0, fmt.Errorf("failed to flush output: %w", err)
	}

	return len(entries), nil
}
