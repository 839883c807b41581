// Package htmlutil converts provider-rendered HTML fragments into plain text.
package htmlutil

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Clean turns an HTML fragment into a single line of plain text: entities
// are decoded, all tags removed, whitespace collapsed and trimmed.
// Clean is idempotent and never fails; malformed markup degrades to a
// best-effort stripped string.
func Clean(raw string) string {
	out := cleanPass(raw)
	// Entity decoding can surface new markup (&amp;lt;b&amp;gt; decodes to
	// <b>), so stripping repeats until the text stops changing. Each pass
	// only removes tags or shortens entities, so the loop terminates.
	for {
		next := cleanPass(out)
		if next == out {
			return out
		}
		out = next
	}
}

func cleanPass(raw string) string {
	decoded := html.UnescapeString(raw)
	stripped := strict.Sanitize(decoded)
	// The policy re-escapes bare entities in text nodes; undo that so the
	// output is plain text rather than HTML.
	return normalizeWhitespace(html.UnescapeString(stripped))
}

// ExtractText converts an HTML fragment into plain text while preserving
// block structure: headers, paragraphs and list items are returned as
// separate paragraphs joined by blank lines. Fragments without block
// elements fall back to Clean.
func ExtractText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// Short-circuit if the payload is already plain text.
	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(html.UnescapeString(trimmed))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return Clean(trimmed)
	}

	doc.Find("script, style, noscript, iframe").Remove()

	var paragraphs []string

	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(i int, s *goquery.Selection) {
		text := normalizeWhitespace(s.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	if len(paragraphs) == 0 {
		return Clean(trimmed)
	}

	return strings.Join(paragraphs, "\n\n")
}

// normalizeWhitespace collapses runs of whitespace into single spaces and
// trims the ends.
func normalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
