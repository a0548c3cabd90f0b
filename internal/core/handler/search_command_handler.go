package handler

import (
	"context"
	"fmt"

	"chartmenu/internal/cli/output"
	"chartmenu/internal/core"
	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"
)

// SearchCommandHandler prints catalog search results and chart details.
type SearchCommandHandler struct {
	chartRegistry ports.ChartRegistry
	config        *domain.Config
	console       core.Console
}

func ProvideSearchCommandHandler(
	chartRegistry ports.ChartRegistry,
	config *domain.Config,
	console core.Console,
) SearchCommandHandler {
	return SearchCommandHandler{
		chartRegistry: chartRegistry,
		config:        config,
		console:       console,
	}
}

// Handle searches the catalog for keyword. A limit of zero uses the configured default.
func (h *SearchCommandHandler) Handle(ctx context.Context, keyword string, limit int) error {
	if limit <= 0 {
		limit = h.config.SearchLimit
	}

	charts, err := h.chartRegistry.Search(ctx, keyword, limit)
	if err != nil {
		return err
	}
	if len(charts) == 0 {
		output.PrintInfo(h.console.Out, fmt.Sprintf("No charts found for '%s'", keyword))
		return nil
	}

	displayCharts(h.console.Out, charts, h.config.DescriptionWidth)
	return nil
}

// HandleShow prints the details of one chart and returns them.
func (h *SearchCommandHandler) HandleShow(ctx context.Context, repositoryName, chartName string) (*domain.ChartDetail, error) {
	detail, err := h.chartRegistry.GetDetail(ctx, repositoryName, chartName)
	if err != nil {
		return nil, err
	}

	displayChartDetail(h.console.Out, detail)
	return detail, nil
}
