// Package validation holds the pure input checks performed before any
// provider call is made. Nothing here does I/O.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/guttosm/tickerpulse/internal/domain/errs"
)

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Symbol checks that a ticker symbol is present.
//
// A whitespace-only value counts as empty, but the value itself is never
// trimmed: " AAPL" passes the check and goes upstream verbatim, where the
// strict canonical-equality comparison will reject it.
func Symbol(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", errs.New(errs.EmptyInput, "Symbol cannot be empty")
	}
	return input, nil
}

// Date validates a YYYY-MM-DD date string and returns it unchanged.
//
// Checks run in order: literal shape, calendar validity, then a date-only
// comparison against today in server local time. The returned string is the
// original input, not a reformatted date.
func Date(input string) (string, error) {
	if !dateShape.MatchString(input) {
		return "", errs.Newf(errs.BadFormat, "Invalid date format. Expected YYYY-MM-DD, got: %s", input)
	}

	requested, err := time.Parse("2006-01-02", input)
	if err != nil {
		return "", errs.Newf(errs.BadCalendarDate, "Invalid date: %s", input)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if requested.After(today) {
		return "", errs.Newf(errs.FutureDate,
			"Date cannot be in the future. Requested: %s, Today: %s", input, today.Format("2006-01-02"))
	}

	return input, nil
}
