package service

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount indicates a missing, non-numeric or non-positive USD amount.
var ErrInvalidAmount = errors.New("invalid usd amount")

// ErrInvalidDate indicates a date string that is not DDMMYYYY or not a real calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ErrDateFormat indicates a date string that is not exactly eight ASCII digits.
// It matches ErrInvalidDate under errors.Is.
var ErrDateFormat = fmt.Errorf("%w: expected DDMMYYYY", ErrInvalidDate)

// ErrRateUnavailable indicates the upstream quotation could not be resolved.
var ErrRateUnavailable = errors.New("rate unavailable")
