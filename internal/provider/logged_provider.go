package provider

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggedRatesProviderDecorator wraps a RatesProvider and logs every upstream call.
type LoggedRatesProviderDecorator struct {
	provider     RatesProvider
	log          *zap.SugaredLogger
	providerName string
}

// NewLoggedRatesProvider creates a new LoggedRatesProviderDecorator.
func NewLoggedRatesProvider(provider RatesProvider, logger *zap.SugaredLogger, providerName string) *LoggedRatesProviderDecorator {
	return &LoggedRatesProviderDecorator{
		provider:     provider,
		log:          logger,
		providerName: providerName,
	}
}

// GetRate delegates to the wrapped provider and records the outcome.
func (p *LoggedRatesProviderDecorator) GetRate(ctx context.Context, date time.Time) (*Rate, error) {
	start := time.Now()
	rate, err := p.provider.GetRate(ctx, date)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		p.log.Warnw("Upstream rate lookup failed",
			"provider", p.providerName,
			"date", date.Format(sgsDateLayout),
			"duration_ms", elapsed,
			"error", err,
		)
		return nil, err
	}

	if rate != nil {
		p.log.Infow("Upstream rate lookup",
			"provider", p.providerName,
			"date", date.Format(sgsDateLayout),
			"rate", rate.Value.String(),
			"duration_ms", elapsed,
		)
	}
	return rate, nil
}

var _ RatesProvider = (*LoggedRatesProviderDecorator)(nil)
