package ports

import (
	"context"

	"chartmenu/internal/core/domain"
)

// ChartRegistry queries a public chart catalog. Failures are *domain.RegistryError.
type ChartRegistry interface {
	// Search returns at most limit charts matching keyword, in catalog relevance order.
	Search(ctx context.Context, keyword string, limit int) ([]domain.ChartSummary, error)
	// GetDetail returns the metadata of chartName published by repositoryName.
	GetDetail(ctx context.Context, repositoryName, chartName string) (*domain.ChartDetail, error)
}
