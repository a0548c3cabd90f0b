package handler

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"chartmenu/internal/cli/output"
	"chartmenu/internal/core/domain"

	"github.com/Masterminds/semver/v3"
)

const (
	separatorWidth  = 40
	maxShownVersion = 5
)

// truncateDescription keeps the first width runes and always appends "...", even when
// nothing was cut.
func truncateDescription(description string, width int) string {
	runes := []rune(description)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes) + "..."
}

func displayCharts(w io.Writer, charts []domain.ChartSummary, descriptionWidth int) {
	for _, chart := range charts {
		fmt.Fprintf(w, "Name: %s\n", chart.Name)
		fmt.Fprintf(w, "Version: %s\n", chart.Version)
		fmt.Fprintf(w, "Repository: %s\n", chart.RepositoryName())
		fmt.Fprintf(w, "Description: %s\n", truncateDescription(chart.Description, descriptionWidth))
		output.PrintSeparator(w, separatorWidth)
	}
}

func displayChartDetail(w io.Writer, detail *domain.ChartDetail) {
	fmt.Fprintf(w, "Name: %s\n", detail.Name)
	fmt.Fprintf(w, "Description: %s\n", detail.Description)
	fmt.Fprintf(w, "Version: %s\n", detail.Version)
	if len(detail.Maintainers) > 0 {
		fmt.Fprintf(w, "Maintainers: %s\n", strings.Join(detail.MaintainerNames(), ", "))
	}
	if versions := newestVersions(detail.AvailableVersions, maxShownVersion); len(versions) > 0 {
		fmt.Fprintf(w, "Versions: %s\n", strings.Join(versions, ", "))
	}
	fmt.Fprintf(w, "ID: %s\n", detail.PackageID)
}

// newestVersions returns up to n versions ordered newest first. Entries that are not
// semantic versions are skipped.
func newestVersions(available []domain.AvailableVersion, n int) []string {
	var parsed semver.Collection
	for _, v := range available {
		sv, err := semver.NewVersion(v.Version)
		if err != nil {
			continue
		}
		parsed = append(parsed, sv)
	}
	sort.Sort(sort.Reverse(parsed))

	if len(parsed) > n {
		parsed = parsed[:n]
	}
	versions := make([]string, 0, len(parsed))
	for _, v := range parsed {
		versions = append(versions, v.Original())
	}
	return versions
}
