package entry

import (
	"time"
)

// LayoutKey is the canonical date key of an entry.
const LayoutKey = "2006-01-02"

// ParseDate parses a YYYY-MM-DD key as local midnight.
func ParseDate(v string) (time.Time, error) {
	return time.ParseInLocation(LayoutKey, v, time.Local)
}

// ValidDate reports whether v is a canonical date key.
func ValidDate(v string) bool {
	t, err := ParseDate(v)
	if err != nil {
		return false
	}
	return FormatDate(t) == v
}

// FormatDate renders the local calendar date of t as a key.
func FormatDate(t time.Time) string {
	return t.Local().Format(LayoutKey)
}

// Today is the key for the local date of now.
func Today(now time.Time) string {
	return FormatDate(now)
}

// AddDays shifts a date key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDate(key)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// Display renders a key the way the journal shows it, 2024.01.31.
func Display(key string) string {
	t, err := ParseDate(key)
	if err != nil {
		return key
	}
	return t.Format("2006.01.02")
}
