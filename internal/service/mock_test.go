package service

import (
	"context"
	"time"

	"ptaxservice/internal/provider"
)

// mockRatesProvider counts calls so tests can assert no upstream traffic.
type mockRatesProvider struct {
	getRateFunc func(ctx context.Context, date time.Time) (*provider.Rate, error)
	calls       int
	lastDate    time.Time
}

func (m *mockRatesProvider) GetRate(ctx context.Context, date time.Time) (*provider.Rate, error) {
	m.calls++
	m.lastDate = date
	return m.getRateFunc(ctx, date)
}
