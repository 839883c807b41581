package models

import "encoding/json"

// RenderedField is the provider's wrapper around HTML-rendered values.
type RenderedField struct {
	Rendered string `json:"rendered"`
}

// RawPost is one article record as returned by the provider, pre-cleaning.
// Optional fields are pointers so absence is distinguishable from empty.
type RawPost struct {
	ID         json.Number    `json:"id,omitempty"`
	Title      *RenderedField `json:"title,omitempty"`
	ShortTitle string         `json:"short_title,omitempty"`
	Content    *RenderedField `json:"content,omitempty"`
	Excerpt    *RenderedField `json:"excerpt,omitempty"`
	Date       string         `json:"date,omitempty"`
	PostURL    string         `json:"post_url,omitempty"`
}

// PostPage is the provider's category pagination response.
// PostResponseDto stays nil when the field is absent, which signals a
// schema mismatch to the fetcher.
type PostPage struct {
	PostResponseDto []RawPost `json:"postResponseDto"`
}

// NewsArticle is the normalized, cleaned output entity. PostID carries the
// provider's post id for archive filenames and stays out of the serialized
// five-field document.
type NewsArticle struct {
	Source    string `json:"source"`
	Headline  string `json:"headline"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	PostID    string `json:"-"`
}

// OutputDocument is the shape of the JSON file written at the end of a run.
type OutputDocument struct {
	NewsArticles []NewsArticle `json:"newsArticles"`
}
