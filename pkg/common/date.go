package common

import (
	"strings"
	"time"
)

// dateFormats are tried in order at ingestion.
var dateFormats = []string{"2006-01-02", "02/01/2006", "2006/01/02"}

// Date is an optional calendar date. The zero value is the explicit
// "no date" marker (Valid false). A missing date orders after every
// present date, so dateless records always sort last.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate converts raw text into a Date. Empty or unparseable input
// yields the no-date marker; parsing never fails loudly.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t, Valid: true}
		}
	}
	return Date{}
}

// Compare orders dates chronologically with no-date after every real
// date. Returns -1, 0 or 1.
func (d Date) Compare(other Date) int {
	switch {
	case !d.Valid && !other.Valid:
		return 0
	case !d.Valid:
		return 1
	case !other.Valid:
		return -1
	}
	return d.Time.Compare(other.Time)
}

// Before reports whether d is strictly earlier than other. A no-date
// value is never before anything.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}
