package parsers

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// dateDialect is one supported textual date layout: a strict
// fixed-width pattern plus the submatch index of each component.
type dateDialect struct {
	pattern          *regexp.Regexp
	year, month, day int
}

// Dialects are tried in order: ISO first, then the two locale-short
// variants.
var dateDialects = []dateDialect{
	{regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`), 1, 2, 3},
	{regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`), 3, 2, 1},
	{regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`), 3, 2, 1},
}

// ParseDate returns the canonical UTC-midnight date for the given
// input. A time.Time value is passed through unchanged; a string is
// parsed against the supported dialects (ISO "YYYY-MM-DD", locale-short
// "DD.MM.YYYY" and "DD/MM/YYYY"). Any other input, an unrecognized
// string, or a string denoting an impossible calendar date fails with
// *InvalidDateError.
func ParseDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseDateString(v)
	default:
		return time.Time{}, &InvalidDateError{Value: fmt.Sprintf("%v", value)}
	}
}

func parseDateString(s string) (time.Time, error) {
	for _, d := range dateDialects {
		m := d.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}

		// Submatches are all-digit by construction, so Atoi cannot fail.
		year, _ := strconv.Atoi(m[d.year])
		month, _ := strconv.Atoi(m[d.month])
		day, _ := strconv.Atoi(m[d.day])

		// time.Date rolls invalid components forward (June 31 becomes
		// July 1), so reconstruct and compare instead of trusting it.
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
			return time.Time{}, &InvalidDateError{Value: s}
		}
		return t, nil
	}
	return time.Time{}, &InvalidDateError{Value: s}
}
