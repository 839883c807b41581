// Package timeutil normalizes the provider's timestamp strings.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layouts the provider has been observed to use. The pagination API renders
// day-first dates with a 12-hour clock; archived payloads carry ISO-8601.
var providerLayouts = []string{
	"02-01-2006T3:04 PM",
	"02-01-2006T3:04PM",
	"02-01-2006T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02-01-2006",
	"2006-01-02",
}

// FormatTimestamp parses a provider date string and re-renders it as
// "YYYY-MM-DD H:MM" with no leading zero on the hour. Unparseable input is
// returned unchanged; formatting failures never abort a run.
func FormatTimestamp(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}

	for _, layout := range providerLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return render(t)
		}
	}

	// Last resort for formats the provider has not been seen to use yet.
	if t, err := dateparse.ParseAny(trimmed); err == nil {
		return render(t)
	}

	return raw
}

func render(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d %d:%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
