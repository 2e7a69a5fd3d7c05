package api

import (
	"context"
	"time"

	"ptaxservice/internal/service"
)

// mockConversionService implements service.ConversionServiceInterface for testing.
type mockConversionService struct {
	convertFunc func(ctx context.Context, req service.ConversionRequest) (*service.ConversionResult, error)
	rateFunc    func(ctx context.Context, referenceDate *time.Time) (*service.Quotation, error)
	calls       int
}

func (m *mockConversionService) Convert(ctx context.Context, req service.ConversionRequest) (*service.ConversionResult, error) {
	m.calls++
	return m.convertFunc(ctx, req)
}

func (m *mockConversionService) Rate(ctx context.Context, referenceDate *time.Time) (*service.Quotation, error) {
	m.calls++
	return m.rateFunc(ctx, referenceDate)
}
