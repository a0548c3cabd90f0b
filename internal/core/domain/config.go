package domain

import (
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultCatalogURL       = "https://artifacthub.io/api/v1"
	DefaultHelmBinary       = "helm"
	DefaultSearchLimit      = 10
	DefaultDescriptionWidth = 100
)

// Config holds the user settings read from ~/.chartmenu.yaml. Every field is optional.
type Config struct {
	CatalogURL       string `yaml:"catalogUrl"`
	HelmBinary       string `yaml:"helmBinary"`
	SearchLimit      int    `yaml:"searchLimit"`
	DescriptionWidth int    `yaml:"descriptionWidth"`
	CatalogTimeout   string `yaml:"catalogTimeout,omitempty"`
	// ReleaseActions enables the install, list and uninstall menu entries.
	ReleaseActions bool `yaml:"releaseActions"`
	// LegacyRepoCleanup reuses the release name as repository name when
	// uninstalling with repository cleanup.
	LegacyRepoCleanup bool `yaml:"legacyRepoCleanup"`
	FailFast          bool `yaml:"failFast"`
}

func CreateDefaultConfig() Config {
	return Config{
		CatalogURL:       DefaultCatalogURL,
		HelmBinary:       DefaultHelmBinary,
		SearchLimit:      DefaultSearchLimit,
		DescriptionWidth: DefaultDescriptionWidth,
	}
}

// ApplyDefaults fills zero values with their defaults.
func (c *Config) ApplyDefaults() {
	defaults := CreateDefaultConfig()
	if c.CatalogURL == "" {
		c.CatalogURL = defaults.CatalogURL
	}
	if c.HelmBinary == "" {
		c.HelmBinary = defaults.HelmBinary
	}
	if c.SearchLimit == 0 {
		c.SearchLimit = defaults.SearchLimit
	}
	if c.DescriptionWidth == 0 {
		c.DescriptionWidth = defaults.DescriptionWidth
	}
}

// Timeout returns the parsed catalog timeout. Zero means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.CatalogTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CatalogTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid catalogTimeout '%s': %w", c.CatalogTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("catalogTimeout must not be negative")
	}
	return d, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.CatalogURL)
	if err != nil {
		return fmt.Errorf("invalid catalogUrl '%s': %w", c.CatalogURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("catalogUrl '%s' must use http or https", c.CatalogURL)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("catalogUrl '%s' has no hostname", c.CatalogURL)
	}
	if c.HelmBinary == "" {
		return fmt.Errorf("helmBinary must not be empty")
	}
	if c.SearchLimit <= 0 {
		return fmt.Errorf("searchLimit must be positive, got %d", c.SearchLimit)
	}
	if c.DescriptionWidth <= 0 {
		return fmt.Errorf("descriptionWidth must be positive, got %d", c.DescriptionWidth)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}
