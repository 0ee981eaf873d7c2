// Package datetime parses the two textual datetime formats accepted by
// meeting forms: the localized Brazilian format (DD/MM/YYYY HH:MM) and the
// ISO-like picker format (YYYY-MM-DD HH:MM).
package datetime

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// LayoutLocalized is the day-first format used by localized form inputs.
	LayoutLocalized = "02/01/2006 15:04"
	// LayoutISO is the format emitted by the datetime picker.
	LayoutISO = "2006-01-02 15:04"
)

var localizedPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}$`)

// Parse parses a datetime string. The localized pattern is tried first when
// the input token-matches it; otherwise the ISO layout is tried, then a set
// of fallback layouts. An unparseable value yields an error the caller must
// surface as a validation failure.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("datetime is blank")
	}

	if localizedPattern.MatchString(value) {
		if t, err := time.Parse(LayoutLocalized, value); err == nil {
			return t, nil
		}
		// Token-matched but impossible date (e.g. 45/13/2025); fall through
		// so the error reports the raw value.
	}

	if t, err := time.Parse(LayoutISO, value); err == nil {
		return t, nil
	}

	// Raw pass-through to the underlying parser, mirroring the permissive
	// behavior of the original date handling.
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable datetime %q", value)
}

// ParseDate parses a date-only value (task deadlines).
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is blank")
	}

	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}
