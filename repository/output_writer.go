// ABOUTME: This file writes the run's articles as a single JSON document
// ABOUTME: Output goes through a temp file so a failed run leaves no partial file
package repository

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"news-collector/models"
)

// OutputWriter serializes articles under the "newsArticles" key.
type OutputWriter struct {
	logger *slog.Logger
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(logger *slog.Logger) *OutputWriter {
	return &OutputWriter{logger: logger}
}

// Write serializes the articles to path, overwriting any existing file.
// The document is UTF-8, two-space indented, with HTML escaping disabled so
// non-ASCII headlines stay readable.
func (w *OutputWriter) Write(articles []models.NewsArticle, path string) error {
	doc := models.OutputDocument{NewsArticles: articles}
	if doc.NewsArticles == nil {
		doc.NewsArticles = []models.NewsArticle{}
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".output-*.json")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	// CreateTemp opens the file 0600; the published document is world-readable.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("set output file mode: %w", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode output: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close output file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write output file: %w", err)
	}

	w.logger.Info("wrote output document", "path", path, "articles", len(articles))

	return nil
}
