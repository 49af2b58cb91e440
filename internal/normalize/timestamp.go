// Package normalize canonicalizes the dataset's irregular date and time
// encodings into parseable timestamps.
//
// Stored dates are "month/day/year" with no zero-padding guarantee; stored
// hours are "HH:MM:SS" with an optional trailing "Z". The trailing zone
// marker is stripped, not converted: a "Z"-suffixed hour and a bare hour
// normalize to the same instant. That is a deliberate approximation carried
// over from the source data pipeline.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// canonicalLayout is the shape of a fully normalized timestamp.
const canonicalLayout = "2006-01-02T15:04:05Z"

// CanonicalDate converts a stored "month/day/year" date to zero-padded
// "year-month-day" form. Missing or non-numeric components are an error;
// calendar-range validation happens when the full timestamp is parsed.
func CanonicalDate(loginDate string) (string, error) {
	parts := strings.Split(loginDate, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed login date %q", loginDate)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return "", fmt.Errorf("malformed login date %q: %w", loginDate, err)
		}
		nums[i] = n
	}

	month, day, year := nums[0], nums[1], nums[2]
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

// CleanHour strips a trailing "Z" zone marker, yielding a zone-naive
// time-of-day string. Any other input passes through unmodified.
func CleanHour(loginHour string) string {
	return strings.TrimSuffix(loginHour, "Z")
}

// Timestamp combines a stored date and hour into one absolute instant:
// canonical date + "T" + cleaned hour + "Z". Records whose components are
// missing, non-numeric, or out of calendar range fail here and are excluded
// from time-based aggregation by the caller.
func Timestamp(loginDate, loginHour string) (time.Time, error) {
	date, err := CanonicalDate(loginDate)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(canonicalLayout, date+"T"+CleanHour(loginHour)+"Z")
	if err != nil {
		return time.Time{}, fmt.Errorf("normalize %q %q: %w", loginDate, loginHour, err)
	}
	return t, nil
}

// HourOfDay extracts the hour (0-23) from a normalized instant. Normalized
// timestamps always carry the synthetic "Z", so this is the UTC hour.
func HourOfDay(t time.Time) int {
	return t.UTC().Hour()
}

// StoreDate converts an ISO "year-month-day" date into the store's native
// unpadded "month/day/year" encoding.
func StoreDate(isoDate string) (string, error) {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed date %q, expected YYYY-MM-DD", isoDate)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return "", fmt.Errorf("malformed date %q, expected YYYY-MM-DD: %w", isoDate, err)
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	return fmt.Sprintf("%d/%d/%d", month, day, year), nil
}

// ISODate converts a stored "month/day/year" date to ISO "year-month-day"
// form. It is CanonicalDate under a name that reads correctly at call sites
// reporting dates back to clients.
func ISODate(storeDate string) (string, error) {
	return CanonicalDate(storeDate)
}
