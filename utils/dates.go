// File: utils/dates.go
package utils

import (
	"strings"
	"time"
)

// ComparableDateLayout is the canonical YYYY-MM-DD form. Every date
// comparison in the availability and booking code goes through this form so
// timezone drift can never split a calendar day in two.
const ComparableDateLayout = "2006-01-02"

// flexibleDateLayouts are tried in order by ParseFlexibleDate. The later
// entries cover legacy free-text forms still present in old supplier data.
var flexibleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	ComparableDateLayout,
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"Mon Jan 2 2006",
}

// ToComparableDateString renders t in the canonical comparison form.
func ToComparableDateString(t time.Time) string {
	return t.Format(ComparableDateLayout)
}

// ParseFlexibleDate accepts a time.Time, *time.Time or a date string in any
// of the known layouts. It never panics; input it cannot make sense of
// yields ok=false and callers apply their own policy (fail-open for
// availability reads, blocking for plan mutations).
func ParseFlexibleDate(input any) (time.Time, bool) {
	switch v := input.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range flexibleDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return ToComparableDateString(a) == ToComparableDateString(b)
}
