package service

import (
	"context"
	"fmt"
	"time"

	"ptaxservice/internal/provider"
)

// RateResolver turns a reference date into the PTAX quotation that applies to it.
type RateResolver interface {
	Resolve(ctx context.Context, referenceDate *time.Time) (*Quotation, error)
}

// PTAXResolver resolves quotations against a provider.RatesProvider.
type PTAXResolver struct {
	provider provider.RatesProvider
	loc      *time.Location
	now      func() time.Time
}

// NewPTAXResolver creates a resolver. "Today" is evaluated in loc (UTC when nil).
func NewPTAXResolver(prov provider.RatesProvider, loc *time.Location) *PTAXResolver {
	if loc == nil {
		loc = time.UTC
	}
	return &PTAXResolver{
		provider: prov,
		loc:      loc,
		now:      time.Now,
	}
}

// priorBusinessDayRule implements IN RFB nº 1.312/2012: a document dated on the
// reference day is converted at the PTAX sell rate of the day before.
func priorBusinessDayRule(reference time.Time) time.Time {
	return reference.AddDate(0, 0, -1)
}

// QuotationDate returns the date whose rate applies to referenceDate, or to
// today when referenceDate is nil.
func (r *PTAXResolver) QuotationDate(referenceDate *time.Time) time.Time {
	var ref time.Time
	if referenceDate != nil {
		ref = *referenceDate
	} else {
		ref = r.now().In(r.loc)
	}
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return priorBusinessDayRule(ref)
}

// Resolve fetches the quotation for referenceDate. Every call hits the
// upstream; failures of any kind are reported as ErrRateUnavailable.
func (r *PTAXResolver) Resolve(ctx context.Context, referenceDate *time.Time) (*Quotation, error) {
	date := r.QuotationDate(referenceDate)

	rate, err := r.provider.GetRate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateUnavailable, err)
	}
	if rate == nil || !rate.Value.IsPositive() {
		return nil, fmt.Errorf("%w: upstream returned no usable value for %s", ErrRateUnavailable, date.Format(DateLayout))
	}

	return &Quotation{
		Rate:      rate.Value,
		Date:      date,
		SourceURL: rate.SourceURL,
	}, nil
}

var _ RateResolver = (*PTAXResolver)(nil)
