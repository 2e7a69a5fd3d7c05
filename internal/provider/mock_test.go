package provider

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetRate(ctx context.Context, date time.Time) (*Rate, error) {
	args := m.Called(ctx, date)
	r, _ := args.Get(0).(*Rate)
	return r, args.Error(1)
}
