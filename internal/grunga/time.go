package grunga

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	http.TimeFormat,
	time.RFC1123,
}

// ParseTime understands the date formats the API emits: ISO dates and
// timestamps as well as the RFC1123 dates a Flask jsonify produces.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time: %q", s)
}
