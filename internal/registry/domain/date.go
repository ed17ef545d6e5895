package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire and SQL parameter format for calendar dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date, expressed at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string for the given field.
func ParseDate(field, value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, NewRequired(field)
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, NewInvalidFormat(field, "expected YYYY-MM-DD", err)
	}
	// 0001-01-01 is the zero time, which request validation treats as absent.
	if t.IsZero() {
		return time.Time{}, NewInvalidFormat(field, "date out of range", nil)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
