package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"news-collector/domain"
)

// Collector orchestrates one run of the pipeline:
// fetch -> convert (per record) -> write. Stages run strictly in sequence
// and no state survives the run.
type Collector struct {
	logger    *slog.Logger
	fetcher   PostFetcher
	converter *Converter
	writer    OutputWriter
	archiver  ArticleArchiver
}

// NewCollector creates a Collector for single-document output runs.
func NewCollector(logger *slog.Logger, fetcher PostFetcher, converter *Converter, writer OutputWriter) *Collector {
	return &Collector{
		logger:    logger,
		fetcher:   fetcher,
		converter: converter,
		writer:    writer,
	}
}

// NewArchiveCollector creates a Collector for per-category archive runs.
func NewArchiveCollector(logger *slog.Logger, fetcher PostFetcher, converter *Converter, archiver ArticleArchiver) *Collector {
	return &Collector{
		logger:    logger,
		fetcher:   fetcher,
		converter: converter,
		archiver:  archiver,
	}
}

// Run fetches one page of one category and writes the output document.
// Fetch and schema failures abort before any file is touched; the output is
// written exactly once at the end.
func (c *Collector) Run(ctx context.Context, categoryID, page, count int, outputPath string) (*RunResult, error) {
	runID := uuid.NewString()
	logger := c.logger.With("run_id", runID)

	logger.Info("starting run", "category_id", categoryID, "page", page, "count", count)

	posts, err := c.fetcher.Fetch(ctx, categoryID, page, count)
	if err != nil {
		logger.Error("fetch failed", "error", err)
		return nil, err
	}

	articles := c.converter.ConvertAll(posts)

	if err := c.writer.Write(articles, outputPath); err != nil {
		logger.Error("failed to write output", "error", err, "path", outputPath)
		return nil, err
	}

	result := &RunResult{
		RunID:        runID,
		FetchedCount: len(posts),
		MappedCount:  len(articles),
		SkippedCount: len(posts) - len(articles),
		OutputPath:   outputPath,
	}

	logger.Info("run completed",
		"fetched", result.FetchedCount,
		"mapped", result.MappedCount,
		"skipped", result.SkippedCount,
		"output", result.OutputPath)

	return result, nil
}

// Archive fetches pages 1..pages of one category and saves each article into
// the per-category archive. A failed page fetch is logged and skipped so the
// remaining pages still get archived.
func (c *Collector) Archive(ctx context.Context, category domain.Category, pages, perPage int) (*ArchiveResult, error) {
	if c.archiver == nil {
		return nil, fmt.Errorf("collector has no archiver configured")
	}

	runID := uuid.NewString()
	logger := c.logger.With("run_id", runID, "category", category.Name)

	result := &ArchiveResult{RunID: runID}

	for page := 1; page <= pages; page++ {
		posts, err := c.fetcher.Fetch(ctx, category.ID, page, perPage)
		if err != nil {
			logger.Error("page fetch failed, skipping", "page", page, "error", err)
			result.PagesFailed++
			continue
		}
		result.PagesFetched++

		articles := c.converter.ConvertAll(posts)
		result.SkippedCount += len(posts) - len(articles)

		for _, article := range articles {
			path, err := c.archiver.SaveArticle(article, category.Name)
			if err != nil {
				return result, fmt.Errorf("save article: %w", err)
			}
			logger.Debug("archived article", "path", path)
			result.SavedCount++
		}

		logger.Info("archived page", "page", page, "saved", len(articles))
	}

	return result, nil
}

// ArchiveAll runs Archive over every known category in order.
func (c *Collector) ArchiveAll(ctx context.Context, pages, perPage int) (*ArchiveResult, error) {
	total := &ArchiveResult{RunID: uuid.NewString()}

	for _, category := range domain.Categories() {
		result, err := c.Archive(ctx, category, pages, perPage)
		if result != nil {
			total.PagesFetched += result.PagesFetched
			total.PagesFailed += result.PagesFailed
			total.SavedCount += result.SavedCount
			total.SkippedCount += result.SkippedCount
		}
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
