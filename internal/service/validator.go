package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceDateLayout is the compact DDMMYYYY form accepted from HTTP and CLI callers.
const ReferenceDateLayout = "02012006"

// ValidateAmount rejects zero and negative USD amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, amount.String())
	}
	return nil
}

// ParseReferenceDate parses a DDMMYYYY string into a calendar date at midnight
// in loc. An empty string yields nil, meaning "today".
func ParseReferenceDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) != 8 || !isASCIIDigits(s) {
		return nil, fmt.Errorf("%w, got %q", ErrDateFormat, s)
	}
	if loc == nil {
		loc = time.UTC
	}

	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[2:4])
	year, _ := strconv.Atoi(s[4:8])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes overflow (32/01 -> 01/02), so a round trip detects bad dates.
	if year < 1 || d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return nil, fmt.Errorf("%w: %s is not a valid calendar date", ErrInvalidDate, s)
	}
	return &d, nil
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
