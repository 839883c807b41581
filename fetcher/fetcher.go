// Package fetcher issues the single category pagination request to the
// provider API and decodes the response.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"news-collector/config"
	"news-collector/domain"
	"news-collector/models"
)

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves raw posts from the provider's category pagination API.
type Fetcher struct {
	logger *slog.Logger
	client HTTPClient
	config *config.Config
}

// New creates a Fetcher with a default HTTP client using the configured timeout.
func New(cfg *config.Config, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		logger: logger,
		config: cfg,
		client: &http.Client{
			Timeout: cfg.HTTP.Timeout,
		},
	}
}

// NewWithClient creates a Fetcher with a custom HTTP client.
func NewWithClient(cfg *config.Config, logger *slog.Logger, client HTTPClient) *Fetcher {
	return &Fetcher{
		logger: logger,
		config: cfg,
		client: client,
	}
}

// Fetch issues one GET to the pagination endpoint and returns the raw posts.
// There is no retry: connection failures wrap ErrUpstreamUnavailable,
// non-2xx statuses wrap ErrUpstreamStatus, and a response without the post
// list field wraps ErrMissingPostList.
func (f *Fetcher) Fetch(ctx context.Context, categoryID, page, count int) ([]models.RawPost, error) {
	if categoryID <= 0 || page <= 0 || count <= 0 {
		return nil, fmt.Errorf("%w: category=%d page=%d count=%d",
			domain.ErrInvalidPagination, categoryID, page, count)
	}

	endpoint := fmt.Sprintf("%s/post/categoryPostPagination/%d/%d/%d/",
		strings.TrimRight(f.config.API.BaseURL, "/"), categoryID, page, count)

	f.logger.Info("fetching posts", "endpoint", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", f.config.HTTP.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("request to provider failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.Error("provider returned non-success status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %d", domain.ErrUpstreamStatus, resp.StatusCode)
	}

	var payload models.PostPage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		f.logger.Error("failed to decode provider response", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if payload.PostResponseDto == nil {
		f.logger.Error("provider response is missing the post list field")
		return nil, domain.ErrMissingPostList
	}

	f.logger.Info("fetched posts", "count", len(payload.PostResponseDto))

	return payload.PostResponseDto, nil
}
