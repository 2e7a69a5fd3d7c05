// Package provider implements the upstream client for the PTAX exchange-rate series.
package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a single upstream observation together with the URL it was read from.
type Rate struct {
	Value     decimal.Decimal
	SourceURL string
}

// RatesProvider fetches the USD/BRL sell rate published for a given date.
type RatesProvider interface {
	GetRate(ctx context.Context, date time.Time) (*Rate, error)
}
