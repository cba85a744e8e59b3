package utils

import (
	"time"
)

// newsTimeLayouts covers the timestamp formats observed across news sources.
var newsTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimeUTC parses a source-provided timestamp of unknown format and
// normalizes it to UTC. Offsets present in the input are honored.
func ParseTimeUTC(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range newsTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
