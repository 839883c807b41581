// ABOUTME: This file persists individual articles into the per-category archive
// ABOUTME: Filenames are derived from the article timestamp plus an md5 URL id
package repository

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"news-collector/models"
)

const archiveSubdir = "news_first"

// Timestamp layouts accepted when deriving archive filenames.
var filenameLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

// ArchiveWriter saves one JSON file per article under
// {baseDir}/news_first/{category}/.
type ArchiveWriter struct {
	logger  *slog.Logger
	baseDir string
}

// NewArchiveWriter creates an archive writer rooted at baseDir.
func NewArchiveWriter(baseDir string, logger *slog.Logger) *ArchiveWriter {
	return &ArchiveWriter{
		logger:  logger,
		baseDir: baseDir,
	}
}

// archivedArticle is the per-file document: the article plus its stable id.
type archivedArticle struct {
	ID string `json:"id"`
	models.NewsArticle
}

// SaveArticle writes the article into its category directory, creating the
// directory tree as needed. The archive id prefers the provider's post id
// and falls back to an md5 of the URL when the provider omits it.
// Returns the path of the written file.
func (w *ArchiveWriter) SaveArticle(article models.NewsArticle, categoryName string) (string, error) {
	dir := filepath.Join(w.baseDir, archiveSubdir, categoryName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}

	id := article.PostID
	if id == "" {
		id = ArticleID(article.URL)
	}
	path := filepath.Join(dir, filename(article.Timestamp, id))

	data, err := json.MarshalIndent(archivedArticle{ID: id, NewsArticle: article}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode article: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write article file: %w", err)
	}

	w.logger.Debug("saved article", "path", path)

	return path, nil
}

// ArticleID derives the stable archive id for an article URL.
func ArticleID(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}

// filename builds a sortable filename from the formatted timestamp and the
// article id. Unparseable timestamps fall back to the current time.
func filename(timestamp, id string) string {
	t := time.Now()

	for _, layout := range filenameLayouts {
		if parsed, err := time.Parse(layout, timestamp); err == nil {
			t = parsed
			break
		}
	}

	return t.Format("2006-01-02_15_04_05") + "_" + id + ".json"
}
