package service

import (
	"context"

	"news-collector/models"
)

// PostFetcher retrieves raw posts from the provider API.
type PostFetcher interface {
	Fetch(ctx context.Context, categoryID, page, count int) ([]models.RawPost, error)
}

// OutputWriter serializes a run's articles to the output document.
type OutputWriter interface {
	Write(articles []models.NewsArticle, path string) error
}

// ArticleArchiver persists one article into the per-category archive.
type ArticleArchiver interface {
	SaveArticle(article models.NewsArticle, categoryName string) (string, error)
}

// RunResult summarizes a single fetch-and-write run.
type RunResult struct {
	RunID        string
	FetchedCount int
	MappedCount  int
	SkippedCount int
	OutputPath   string
}

// ArchiveResult summarizes an archive run over one or more categories.
type ArchiveResult struct {
	RunID        string
	PagesFetched int
	PagesFailed  int
	SavedCount   int
	SkippedCount int
}
