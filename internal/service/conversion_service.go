// Package service implements PTAX rate resolution and disclosure text rendering.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ConversionServiceInterface defines the operations exposed to HTTP and CLI callers.
type ConversionServiceInterface interface {
	Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error)
	Rate(ctx context.Context, referenceDate *time.Time) (*Quotation, error)
}

// ConversionService validates requests, resolves the quotation and renders the text.
type ConversionService struct {
	resolver RateResolver
	log      *zap.SugaredLogger
}

// NewConversionService creates a new ConversionService.
func NewConversionService(resolver RateResolver, logger *zap.SugaredLogger) *ConversionService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ConversionService{
		resolver: resolver,
		log:      logger,
	}
}

// Convert converts req.USDAmount at the PTAX rate applicable to req.ReferenceDate.
// The amount is validated before any upstream call is made.
func (s *ConversionService) Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error) {
	if err := ValidateAmount(req.USDAmount); err != nil {
		return nil, err
	}

	q, err := s.resolver.Resolve(ctx, req.ReferenceDate)
	if err != nil {
		s.log.Errorw("Rate resolution failed", "error", err)
		return nil, err
	}

	text, err := Render(req.USDAmount, q, req.ShowSource)
	if err != nil {
		return nil, err
	}

	brl := req.USDAmount.Mul(q.Rate)
	s.log.Infow("Conversion done",
		"usd_amount", req.USDAmount.String(),
		"brl_amount", brl.StringFixed(2),
		"rate", q.Rate.String(),
		"date", q.DateString(),
	)

	return &ConversionResult{
		USDAmount: req.USDAmount,
		BRLAmount: brl,
		Quotation: q,
		Text:      text,
	}, nil
}

// Rate resolves the quotation applicable to referenceDate.
func (s *ConversionService) Rate(ctx context.Context, referenceDate *time.Time) (*Quotation, error) {
	q, err := s.resolver.Resolve(ctx, referenceDate)
	if err != nil {
		s.log.Errorw("Rate resolution failed", "error", err)
		return nil, err
	}
	s.log.Infow("Rate resolved", "rate", q.Rate.String(), "date", q.DateString())
	return q, nil
}

var _ ConversionServiceInterface = (*ConversionService)(nil)
