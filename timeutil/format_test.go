package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"provider day-first with AM": {
			input:    "03-06-2025T8:11 AM",
			expected: "2025-06-03 8:11",
		},
		"provider day-first with PM": {
			input:    "03-06-2025T8:11 PM",
			expected: "2025-06-03 20:11",
		},
		"provider day-first 24h": {
			input:    "03-06-2025T14:30",
			expected: "2025-06-03 14:30",
		},
		"iso without zone": {
			input:    "2025-06-03T08:11:00",
			expected: "2025-06-03 8:11",
		},
		"rfc3339": {
			input:    "2025-06-26T08:45:42Z",
			expected: "2025-06-26 8:45",
		},
		"date only day-first": {
			input:    "26-06-2025",
			expected: "2025-06-26 0:00",
		},
		"midnight keeps zero hour": {
			input:    "2025-01-05T00:07:00",
			expected: "2025-01-05 0:07",
		},
		"empty string falls back to input": {
			input:    "",
			expected: "",
		},
		"garbage falls back to input": {
			input:    "not a date at all",
			expected: "not a date at all",
		},
		"surrounding whitespace tolerated": {
			input:    " 03-06-2025T8:11 AM ",
			expected: "2025-06-03 8:11",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatTimestamp(tc.input))
		})
	}
}

func TestFormatTimestamp_NeverPanics(t *testing.T) {
	inputs := []string{"T", "::", "99-99-9999T99:99 XM", "\x00", "2025"}
	for _, input := range inputs {
		assert.NotPanics(t, func() { FormatTimestamp(input) })
	}
}
