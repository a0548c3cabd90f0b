package artifact_hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"chartmenu/internal/cli/log"
	"chartmenu/internal/core"
	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"
	"chartmenu/internal/version"
)

var _ ports.ChartRegistry = (*Client)(nil)

// helmChartKind selects Helm charts among the package kinds indexed by Artifact Hub.
const helmChartKind = "0"

var (
	errNoPackages       = errors.New("response has no packages field")
	errIncompleteDetail = errors.New("response has no chart name or repository url")
	errInvalidSegment   = errors.New("invalid repository or chart name")
)

// Client queries the Artifact Hub REST API.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	credentials core.CredentialsRepository
}

// ProvideArtifactHubClient creates a Client for Wire dependency injection.
func ProvideArtifactHubClient(config *domain.Config, credentials core.CredentialsRepository) (*Client, error) {
	timeout, err := config.Timeout()
	if err != nil {
		return nil, err
	}
	return NewClient(config.CatalogURL, &http.Client{Timeout: timeout}, credentials)
}

// NewClient creates a Client for the API rooted at baseURL. credentials may be nil.
func NewClient(baseURL string, httpClient *http.Client, credentials core.CredentialsRepository) (*Client, error) {
	p, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url '%s': %w", baseURL, err)
	}
	if p.Hostname() == "" {
		return nil, fmt.Errorf("invalid catalog url '%s': no hostname provided", baseURL)
	}
	return &Client{
		baseURL:     p,
		httpClient:  httpClient,
		credentials: credentials,
	}, nil
}

type searchResponse struct {
	Packages *[]domain.ChartSummary `json:"packages"`
}

// Search returns at most limit Helm charts matching keyword, in catalog relevance order.
func (c *Client) Search(ctx context.Context, keyword string, limit int) ([]domain.ChartSummary, error) {
	u := c.baseURL.JoinPath("packages", "search")
	query := url.Values{}
	query.Set("ts_query_web", keyword)
	query.Set("kind", helmChartKind)
	query.Set("limit", strconv.Itoa(limit))
	u.RawQuery = query.Encode()

	result := &searchResponse{}
	if err := c.get(ctx, "search", u, result); err != nil {
		return nil, err
	}
	if result.Packages == nil {
		return nil, &domain.RegistryError{Op: "search", URL: u.String(), Err: errNoPackages}
	}

	packages := *result.Packages
	if limit >= 0 && len(packages) > limit {
		packages = packages[:limit]
	}
	return packages, nil
}

// GetDetail returns the metadata of chartName published by repositoryName.
func (c *Client) GetDetail(ctx context.Context, repositoryName, chartName string) (*domain.ChartDetail, error) {
	u, err := c.packageURL("helm", repositoryName, chartName)
	if err != nil {
		return nil, err
	}

	detail := &domain.ChartDetail{}
	if err := c.get(ctx, "detail", u, detail); err != nil {
		return nil, err
	}
	if detail.Name == "" || detail.Repository.URL == "" {
		return nil, &domain.RegistryError{Op: "detail", URL: u.String(), StatusCode: http.StatusOK, Err: errIncompleteDetail}
	}
	return detail, nil
}

// packageURL addresses /packages/<segments...> with every segment escaped on its own, so
// a "/" inside a name stays part of that name.
func (c *Client) packageURL(segments ...string) (*url.URL, error) {
	u := *c.baseURL
	path := strings.TrimSuffix(u.Path, "/") + "/packages"
	rawPath := strings.TrimSuffix(u.EscapedPath(), "/") + "/packages"
	for _, segment := range segments {
		if segment == "" || segment == "." || segment == ".." {
			return nil, &domain.RegistryError{
				Op:  "detail",
				URL: c.baseURL.String(),
				Err: fmt.Errorf("%w: '%s'", errInvalidSegment, segment),
			}
		}
		path += "/" + segment
		rawPath += "/" + url.PathEscape(segment)
	}
	u.Path = path
	u.RawPath = rawPath
	return &u, nil
}

func (c *Client) get(ctx context.Context, op string, u *url.URL, into interface{}) error {
	registryError := func(status int, err error) error {
		return &domain.RegistryError{Op: op, URL: u.String(), StatusCode: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return registryError(0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.GetUserAgent())
	c.authorize(req)

	log.Logger().WithField("url", u.String()).Debugf("catalog %s", op)
	res, err := c.httpClient.Do(req)
	if err != nil {
		return registryError(0, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return registryError(res.StatusCode, errors.New(res.Status))
	}

	if err := json.NewDecoder(res.Body).Decode(into); err != nil {
		return registryError(res.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// authorize adds the stored API key, if any. Keyring failures only cost authentication.
func (c *Client) authorize(req *http.Request) {
	if c.credentials == nil {
		return
	}
	apiKey, err := c.credentials.LoadAPIKey()
	if err != nil {
		log.Logger().Debugf("skipping catalog authentication: %v", err)
		return
	}
	if apiKey == nil {
		return
	}
	req.Header.Set("X-API-KEY-ID", apiKey.ID)
	req.Header.Set("X-API-KEY-SECRET", apiKey.Secret)
}
