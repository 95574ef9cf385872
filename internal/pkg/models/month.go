package models

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrMonthRequired is returned when the month parameter is missing
	ErrMonthRequired = errors.New("month parameter is required")
	// ErrInvalidMonth is returned when the month parameter is not a date
	ErrInvalidMonth = errors.New("invalid month format")
)

// monthLayouts are tried in order. Inputs without a zone are read as UTC.
var monthLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
}

// MonthRange is the half-open interval [Start, End) applied to dateOfSale
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// ParseMonthRange resolves a month parameter into a one month interval.
// Start is the parsed instant as given (the day is not reset to the 1st);
// End is Start advanced by one calendar month.
func ParseMonthRange(raw string) (MonthRange, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return MonthRange{}, ErrMonthRequired
	}

	for _, layout := range monthLayouts {
		parsed, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		start := parsed.UTC()
		return MonthRange{
			Start: start,
			End:   start.AddDate(0, 1, 0),
		}, nil
	}

	return MonthRange{}, ErrInvalidMonth
}

// IsValidationError reports whether err came from month resolution
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMonthRequired) || errors.Is(err, ErrInvalidMonth)
}
