package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the DD/MM/YYYY layout used by the SGS API and the disclosure text.
const DateLayout = "02/01/2006"

// Quotation is a resolved PTAX sell rate. It is built fresh on every resolution
// and never cached.
type Quotation struct {
	Rate      decimal.Decimal
	Date      time.Time
	SourceURL string
}

// DateString returns the quotation date as DD/MM/YYYY.
func (q *Quotation) DateString() string {
	return q.Date.Format(DateLayout)
}

// ConversionRequest is the input of a single conversion.
type ConversionRequest struct {
	USDAmount     decimal.Decimal
	ReferenceDate *time.Time
	ShowSource    bool
}

// ConversionResult holds the outcome of a conversion. BRLAmount keeps full
// precision; rounding happens only when it is displayed.
type ConversionResult struct {
	USDAmount decimal.Decimal
	BRLAmount decimal.Decimal
	Quotation *Quotation
	Text      string
}
