package testutil

import (
	"context"

	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.ChartRegistry = (*MockChartRegistry)(nil)

// MockChartRegistry provides a testify mock for ports.ChartRegistry
type MockChartRegistry struct {
	mock.Mock
}

func (m *MockChartRegistry) Search(ctx context.Context, keyword string, limit int) ([]domain.ChartSummary, error) {
	args := m.Called(ctx, keyword, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartSummary), args.Error(1)
}

func (m *MockChartRegistry) GetDetail(ctx context.Context, repositoryName, chartName string) (*domain.ChartDetail, error) {
	args := m.Called(ctx, repositoryName, chartName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartDetail), args.Error(1)
}
