// Package dateutils provides the date layouts and parsing used
// throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants.
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutCompact = "20060102"
	DateLayoutShort   = "060102"
	TimeLayoutShort   = "150405"
)

// ParseISODate parses a strict YYYY-MM-DD date string. The Revolut feed
// carries completion dates in exactly this layout; anything else is a
// fatal input error for the caller.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayoutISO, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date '%s': %w", s, err)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}
