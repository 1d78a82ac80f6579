package storage

import "time"

// TimeFormat is how timestamps are stored in TEXT columns.
const TimeFormat = time.RFC3339Nano

// FormatTime renders a timestamp for storage.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// ParseTime parses a stored timestamp, returning the zero time for
// anything unparseable.
func ParseTime(s string) time.Time {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
