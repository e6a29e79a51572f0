package timeutil

import "time"

// The upstream API emits timestamps with and without millisecond precision,
// so parsing walks a cascade of layouts and the first match wins.
var iso8601Layouts = []string{
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseISO8601 parses an upstream timestamp string. The second return value
// is false when the string is empty or matches none of the known layouts.
func ParseISO8601(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
