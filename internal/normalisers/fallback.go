package normalisers

import (
	"strings"
	"time"
)

// Accepted source timestamp layouts, tried in order. The space-separated
// form is what SQLite DATETIME columns commonly hold.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses a source timestamp string. Anything unparseable
// yields the zero time, which sorts to the end of the feed.
func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// effectiveDate picks the first non-empty candidate and parses it.
// Later candidates are not consulted once one is chosen, even when the
// chosen one fails to parse. With no candidates at all the item dates
// from the moment of normalisation.
func effectiveDate(candidates ...string) time.Time {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return parseDate(c)
		}
	}
	return time.Now()
}

// firstNonEmpty returns the first non-empty value, or "".
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// copyTags returns a non-nil copy of tags. Feed items own their tag
// slices so later queries cannot be affected by caller mutation.
func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
