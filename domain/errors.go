// ABOUTME: Domain-level sentinel errors for the news collector
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Upstream API errors. Both abort the run before any output is written.
var (
	// ErrUpstreamUnavailable indicates the provider API could not be reached
	// (connection failure or timeout)
	ErrUpstreamUnavailable = errors.New("upstream API unavailable")

	// ErrUpstreamStatus indicates the provider API responded with a
	// non-success HTTP status
	ErrUpstreamStatus = errors.New("upstream API returned non-success status")

	// ErrMissingPostList indicates the response decoded as JSON but the
	// expected post list field is absent
	ErrMissingPostList = errors.New("response is missing the post list field")
)

// Record errors. Per-record and non-fatal: the offending record is dropped
// and the run continues.
var (
	// ErrEmptyRecord indicates a record carries neither a headline nor content
	ErrEmptyRecord = errors.New("record has no headline and no content")
)

// Validation errors
var (
	// ErrInvalidPagination indicates category/page/count is not a positive integer
	ErrInvalidPagination = errors.New("category, page and count must be positive")

	// ErrUnknownCategory indicates the requested category name is not registered
	ErrUnknownCategory = errors.New("unknown category")
)
