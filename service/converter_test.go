package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-collector/config"
	"news-collector/domain"
	"news-collector/htmlutil"
	"news-collector/models"
)

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			BaseURL:     "https://apisinhala.newsfirst.lk",
			SiteBaseURL: "https://sinhala.newsfirst.lk/",
			Source:      "News First",
		},
		HTTP: config.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "news-collector-test",
		},
		Output: config.OutputConfig{
			Path:       "output.json",
			ArchiveDir: "data",
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func rendered(s string) *models.RenderedField {
	return &models.RenderedField{Rendered: s}
}

func TestConvert_FullRecord(t *testing.T) {
	c, err := NewConverter(testConfig(), testLogger())
	require.NoError(t, err)

	article, err := c.Convert(models.RawPost{
		ID:      json.Number("271828"),
		Title:   rendered("Breaking <em>news</em>"),
		Content: rendered("<p>Something&nbsp;happened &amp; more.</p>"),
		Date:    "03-06-2025T8:11 AM",
		PostURL: "2025/06/03/breaking-news",
	})
	require.NoError(t, err)

	assert.Equal(t, "News First", article.Source)
	assert.Equal(t, "Breaking news", article.Headline)
	assert.Equal(t, "Something happened & more.", article.Content)
	assert.Equal(t, "2025-06-03 8:11", article.Timestamp)
	assert.Equal(t, "https://sinhala.newsfirst.lk/2025/06/03/breaking-news", article.URL)
	assert.Equal(t, "271828", article.PostID)
}

func TestConvert_FallbackFields(t *testing.T) {
	c, err := NewConverter(testConfig(), testLogger())
	require.NoError(t, err)

	article, err := c.Convert(models.RawPost{
		ShortTitle: "Short headline",
		Excerpt:    rendered("<p>Excerpt body</p>"),
		Date:       "03-06-2025T9:30 AM",
		PostURL:    "2025/06/03/short",
	})
	require.NoError(t, err)

	assert.Equal(t, "Short headline", article.Headline)
	assert.Equal(t, "Excerpt body", article.Content)
}

func TestConvert_ContentPreferredOverExcerpt(t *testing.T) {
	c, err := NewConverter(testConfig(), testLogger())
	require.NoError(t, err)

	article, err := c.Convert(models.RawPost{
		Title:   rendered("Headline"),
		Content: rendered("full body"),
		Excerpt: rendered("excerpt body"),
	})
	require.NoError(t, err)

	assert.Equal(t, "full body", article.Content)
}

func TestConvert_AbsoluteURLPassesThrough(t *testing.T) {
	c, err := NewConverter(testConfig(), testLogger())
	require.NoError(t, err)

	article, err := c.Convert(models.RawPost{
		Title:   rendered("Headline"),
		PostURL: "https://elsewhere.example.com/story",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://elsewhere.example.com/story", article.URL)
}

func TestConvert_MissingOptionalFields(t *testing.T) {
	c, err := NewConverter(testConfig(), testLogger())
	require.NoError(t, err)

	article, err := c.Convert(models.RawPost{
		Title: rendered("Only a headline"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Only a headline", article.Headline)
	assert.Empty(t, article.Content)
	assert.Empty(t, article.Timestamp)
	assert.Empty(t, article.PostID)
	assert.Equal(t, "https://sinhala.newsfirst.lk/", article.URL)
}

func TestConvert_EmptyRecord(t *testing.T) {
	c, err := NewConverter(testConfig(), testLogger())
	require.NoError(t, err)

	_, err = c.Convert(models.RawPost{Date: "03-06-2025T8:11 AM"})
	assert.ErrorIs(t, err, domain.ErrEmptyRecord)
}

func TestConvert_UnparseableDateDegradesToRaw(t *testing.T) {
	c, err := NewConverter(testConfig(), testLogger())
	require.NoError(t, err)

	article, err := c.Convert(models.RawPost{
		Title: rendered("Headline"),
		Date:  "someday soon",
	})
	require.NoError(t, err)

	assert.Equal(t, "someday soon", article.Timestamp)
}

func TestConvertAll_SkipsMalformedPreservesOrder(t *testing.T) {
	c, err := NewConverter(testConfig(), testLogger())
	require.NoError(t, err)

	posts := []models.RawPost{
		{Title: rendered("first"), PostURL: "a"},
		{}, // no headline, no content: dropped
		{Title: rendered("second"), PostURL: "b"},
		{Date: "03-06-2025T8:11 AM"}, // dropped too
		{ShortTitle: "third", PostURL: "c"},
	}

	articles := c.ConvertAll(posts)

	require.Len(t, articles, 3)
	assert.Equal(t, "first", articles[0].Headline)
	assert.Equal(t, "second", articles[1].Headline)
	assert.Equal(t, "third", articles[2].Headline)
}

func TestConvert_ParagraphExtractor(t *testing.T) {
	c, err := NewConverterWithExtractor(testConfig(), testLogger(), htmlutil.ExtractText)
	require.NoError(t, err)

	article, err := c.Convert(models.RawPost{
		Title:   rendered("Headline"),
		Content: rendered("<p>First paragraph.</p><p>Second paragraph.</p>"),
	})
	require.NoError(t, err)

	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", article.Content)
}
