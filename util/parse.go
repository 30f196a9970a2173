package util

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeLayouts are tried in order when coercing timestamp columns.
// Covers RFC3339 exports plus the space/T-separated forms spreadsheets
// produce.
var DefaultTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses s with the first matching layout. Layouts falls
// back to DefaultTimeLayouts when empty.
func ParseTimestamp(s string, layouts []string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// Truncate shortens s to at most width runes, ending in "..." when
// anything was cut and width leaves room for it.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width > 3 {
		return string(runes[:width-3]) + "..."
	}
	if width < 0 {
		width = 0
	}
	return string(runes[:width])
}

// PadRight pads s with spaces to width runes, truncating first if needed.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
