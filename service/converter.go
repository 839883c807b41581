package service

import (
	"fmt"
	"log/slog"
	"net/url"

	"news-collector/config"
	"news-collector/domain"
	"news-collector/htmlutil"
	"news-collector/models"
	"news-collector/timeutil"
)

// BodyExtractor turns a rendered HTML fragment into plain text.
type BodyExtractor func(raw string) string

// Converter maps raw provider posts into normalized articles.
type Converter struct {
	logger   *slog.Logger
	source   string
	siteBase *url.URL
	extract  BodyExtractor
}

// NewConverter creates a Converter that flattens article bodies to single-line
// text. Returns an error if the configured site base URL does not parse.
func NewConverter(cfg *config.Config, logger *slog.Logger) (*Converter, error) {
	return newConverter(cfg, logger, htmlutil.Clean)
}

// NewConverterWithExtractor creates a Converter with a custom body extractor,
// e.g. htmlutil.ExtractText to preserve paragraph structure in archives.
func NewConverterWithExtractor(cfg *config.Config, logger *slog.Logger, extract BodyExtractor) (*Converter, error) {
	return newConverter(cfg, logger, extract)
}

func newConverter(cfg *config.Config, logger *slog.Logger, extract BodyExtractor) (*Converter, error) {
	base, err := url.Parse(cfg.API.SiteBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse site base URL: %w", err)
	}

	return &Converter{
		logger:   logger,
		source:   cfg.API.Source,
		siteBase: base,
		extract:  extract,
	}, nil
}

// Convert maps one raw post to a NewsArticle. Missing optional fields become
// empty strings; a post with neither headline nor content returns
// ErrEmptyRecord so the caller can drop it without aborting the run.
func (c *Converter) Convert(raw models.RawPost) (models.NewsArticle, error) {
	content := ""
	if raw.Content != nil && raw.Content.Rendered != "" {
		content = c.extract(raw.Content.Rendered)
	} else if raw.Excerpt != nil && raw.Excerpt.Rendered != "" {
		content = c.extract(raw.Excerpt.Rendered)
	}

	headline := ""
	if raw.Title != nil && raw.Title.Rendered != "" {
		headline = htmlutil.Clean(raw.Title.Rendered)
	} else if raw.ShortTitle != "" {
		headline = htmlutil.Clean(raw.ShortTitle)
	}

	if headline == "" && content == "" {
		return models.NewsArticle{}, domain.ErrEmptyRecord
	}

	return models.NewsArticle{
		Source:    c.source,
		Headline:  headline,
		Content:   content,
		Timestamp: timeutil.FormatTimestamp(raw.Date),
		URL:       c.articleURL(raw.PostURL),
		PostID:    raw.ID.String(),
	}, nil
}

// ConvertAll maps a page of raw posts, preserving their order. Posts that
// fail with ErrEmptyRecord are skipped with a logged warning.
func (c *Converter) ConvertAll(posts []models.RawPost) []models.NewsArticle {
	articles := make([]models.NewsArticle, 0, len(posts))

	for i, raw := range posts {
		article, err := c.Convert(raw)
		if err != nil {
			c.logger.Warn("skipping record", "index", i, "url", raw.PostURL, "error", err)
			continue
		}
		articles = append(articles, article)
	}

	return articles
}

// articleURL joins a provider path with the site base. Absolute URLs pass
// through untouched; unparseable paths fall back to plain concatenation.
func (c *Converter) articleURL(postURL string) string {
	ref, err := url.Parse(postURL)
	if err != nil {
		return c.siteBase.String() + postURL
	}
	return c.siteBase.ResolveReference(ref).String()
}
