package domain

// ChartSummary is one entry of a catalog search result.
type ChartSummary struct {
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Description string     `json:"description"`
	Repository  Repository `json:"repository"`
}

// RepositoryName returns the name of the repository publishing the chart.
func (c ChartSummary) RepositoryName() string {
	return c.Repository.Name
}

// ChartDetail is the catalog metadata of a single chart.
type ChartDetail struct {
	PackageID         string             `json:"package_id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Version           string             `json:"version"`
	Maintainers       []Maintainer       `json:"maintainers"`
	Repository        Repository         `json:"repository"`
	AvailableVersions []AvailableVersion `json:"available_versions"`
}

type Maintainer struct {
	Name string `json:"name"`
}

type Repository struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type AvailableVersion struct {
	Version string `json:"version"`
}

// MaintainerNames returns the maintainer names in catalog order.
func (c *ChartDetail) MaintainerNames() []string {
	names := make([]string, 0, len(c.Maintainers))
	for _, m := range c.Maintainers {
		names = append(names, m.Name)
	}
	return names
}

// APIKey is an Artifact Hub API key pair.
type APIKey struct {
	ID     string
	Secret string
}
