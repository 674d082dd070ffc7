package utils

import (
	"fmt"
	"strings"
	"time"
)

// ShowTimeLayout is the stored form of a show date. It is fixed width and in
// UTC, so lexical order of stored values equals chronological order.
const ShowTimeLayout = "2006-01-02T15:04:05Z"

var showTimeInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseShowTime accepts the layouts a booking form may submit. Values
// without a zone are read as UTC.
func ParseShowTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("show time is empty")
	}
	for _, layout := range showTimeInputLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized show time %q", value)
}

func FormatShowTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(ShowTimeLayout)
}

// NormalizeShowTime converts submitted input into the stored form.
func NormalizeShowTime(value string) (string, error) {
	t, err := ParseShowTime(value)
	if err != nil {
		return "", err
	}
	return FormatShowTime(t), nil
}

// IsPast reports whether a show date lies strictly before now. now is cut to
// whole seconds, the precision of stored dates. Dates that cannot be parsed
// fall back to comparing the raw text against the stored form of now.
func IsPast(date string, now time.Time) bool {
	now = now.UTC().Truncate(time.Second)
	t, err := ParseShowTime(date)
	if err != nil {
		return date < FormatShowTime(now)
	}
	return t.Before(now)
}

// IsUpcoming is the strict counterpart of IsPast. A date equal to now is
// neither past nor upcoming.
func IsUpcoming(date string, now time.Time) bool {
	now = now.UTC().Truncate(time.Second)
	t, err := ParseShowTime(date)
	if err != nil {
		return date > FormatShowTime(now)
	}
	return t.After(now)
}
