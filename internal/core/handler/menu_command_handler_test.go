package handler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"chartmenu/internal/adapters/terminal"
	"chartmenu/internal/core"
	"chartmenu/internal/core/domain"
	"chartmenu/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type menuFixture struct {
	sut           *MenuCommandHandler
	chartRegistry *testutil.MockChartRegistry
	helmClient    *testutil.MockHelmClient
	kubeContext   *testutil.MockKubeContext
	out           *bytes.Buffer
	errOut        *bytes.Buffer
}

func newMenuFixture(t *testing.T, input string, config domain.Config) *menuFixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	f := &menuFixture{
		chartRegistry: new(testutil.MockChartRegistry),
		helmClient:    new(testutil.MockHelmClient),
		kubeContext:   new(testutil.MockKubeContext),
		out:           new(bytes.Buffer),
		errOut:        new(bytes.Buffer),
	}
	console := core.Console{Out: f.out, Err: f.errOut}
	terminalInput := terminal.NewTerminalInput(strings.NewReader(input), f.out)
	releaseManager := core.ProvideReleaseManager(f.helmClient, terminalInput, console)
	searchHandler := ProvideSearchCommandHandler(f.chartRegistry, &config, console)
	f.sut = ProvideMenuCommandHandler(searchHandler, releaseManager, f.kubeContext, terminalInput, &config, console)
	return f
}

func defaultConfig() domain.Config {
	return domain.CreateDefaultConfig()
}

func releaseActionsConfig() domain.Config {
	config := domain.CreateDefaultConfig()
	config.ReleaseActions = true
	return config
}

func nginxDetail() *domain.ChartDetail {
	return &domain.ChartDetail{
		PackageID:   "0c5b5ab6-0f1d-4e0b-9c4b-6d5c0f6f6c3e",
		Name:        "nginx",
		Description: "NGINX Open Source is a web server",
		Version:     "15.1.0",
		Maintainers: []domain.Maintainer{{Name: "Broadcom"}, {Name: "VMware"}},
		Repository:  domain.Repository{Name: "bitnami", URL: "https://charts.bitnami.com/bitnami"},
	}
}

func TestMenuCommandHandler_ExitEndsLoop(t *testing.T) {
	f := newMenuFixture(t, "6\n", defaultConfig())

	err := f.sut.Handle(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "\nHelm Chart Management\n"+
		"1. List Available Charts\n"+
		"2. Get Chart Details\n"+
		"3. Install/Upgrade Chart\n"+
		"4. List Deployed Releases\n"+
		"5. Uninstall a Release\n"+
		"6. Exit\n"+
		"Enter your choice: Exiting...\n", f.out.String())
	f.chartRegistry.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	f.helmClient.AssertNotCalled(t, "Execute", mock.Anything)
}

func TestMenuCommandHandler_ExitStopsReadingInput(t *testing.T) {
	f := newMenuFixture(t, "6\n1\nnginx\n\n", defaultConfig())

	require.NoError(t, f.sut.Handle(t.Context()))

	assert.Equal(t, 1, strings.Count(f.out.String(), "Helm Chart Management"))
	f.chartRegistry.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuCommandHandler_InvalidChoicesRedisplayMenu(t *testing.T) {
	f := newMenuFixture(t, "0\n\n 1\nfoo\n7\n6\n", defaultConfig())

	err := f.sut.Handle(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(f.out.String(), "Invalid choice. Please try again."))
	assert.Equal(t, 6, strings.Count(f.out.String(), "Helm Chart Management"))
	assert.Empty(t, f.errOut.String())
	f.chartRegistry.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	f.helmClient.AssertNotCalled(t, "Execute", mock.Anything)
}

func TestMenuCommandHandler_ReleaseActionsDisabledByDefault(t *testing.T) {
	f := newMenuFixture(t, "3\n4\n5\n6\n", defaultConfig())

	err := f.sut.Handle(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(f.out.String(), "Invalid choice. Please try again."))
	f.helmClient.AssertNotCalled(t, "Execute", mock.Anything)
	f.kubeContext.AssertNotCalled(t, "CurrentNamespace")
}

func TestMenuCommandHandler_ActionsAreAllRegistered(t *testing.T) {
	f := newMenuFixture(t, "", defaultConfig())

	actions := f.sut.Actions()

	require.Len(t, actions, 6)
	enabled := map[string]bool{}
	for i, action := range actions {
		assert.Equal(t, string(rune('1'+i)), action.Key)
		assert.NotNil(t, action.Run, "action %s has no handler", action.Key)
		enabled[action.Key] = action.Enabled
	}
	assert.Equal(t, map[string]bool{"1": true, "2": true, "3": false, "4": false, "5": false, "6": true}, enabled)

	withReleases := newMenuFixture(t, "", releaseActionsConfig())
	for _, action := range withReleases.sut.Actions() {
		assert.True(t, action.Enabled, "action %s should be enabled", action.Key)
	}
}

func TestMenuCommandHandler_SearchUsesDefaultLimit(t *testing.T) {
	f := newMenuFixture(t, "1\nnginx\n\n6\n", defaultConfig())
	charts := []domain.ChartSummary{
		{Name: "nginx", Version: "15.1.0", Description: "NGINX Open Source", Repository: domain.Repository{Name: "bitnami"}},
		{Name: "ingress-nginx", Version: "4.8.3", Description: "Ingress controller for Kubernetes", Repository: domain.Repository{Name: "ingress-nginx"}},
	}
	f.chartRegistry.On("Search", mock.Anything, "nginx", 10).Return(charts, nil).Once()

	err := f.sut.Handle(t.Context())

	require.NoError(t, err)
	f.chartRegistry.AssertExpectations(t)
	assert.Contains(t, f.out.String(), "Enter keyword to search for charts: ")
	assert.Contains(t, f.out.String(), "Enter the maximum number of results (default 10): ")
	assert.Contains(t, f.out.String(), "Name: nginx\n"+
		"Version: 15.1.0\n"+
		"Repository: bitnami\n"+
		"Description: NGINX Open Source...\n"+
		"----------------------------------------\n")
	assert.Equal(t, 2, countLinesWithPrefix(f.out.String(), "Name: "))
}

func TestMenuCommandHandler_SearchWithExplicitLimit(t *testing.T) {
	f := newMenuFixture(t, "1\nredis\n3\n6\n", defaultConfig())
	f.chartRegistry.On("Search", mock.Anything, "redis", 3).Return([]domain.ChartSummary{}, nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.chartRegistry.AssertExpectations(t)
	assert.Contains(t, f.out.String(), "* No charts found for 'redis'")
}

func TestMenuCommandHandler_SearchWithInvalidLimitFallsBack(t *testing.T) {
	f := newMenuFixture(t, "1\nredis\nmany\n6\n", defaultConfig())
	f.chartRegistry.On("Search", mock.Anything, "redis", 10).Return([]domain.ChartSummary{}, nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.chartRegistry.AssertExpectations(t)
	assert.Contains(t, f.errOut.String(), "! invalid limit 'many', using 10")
}

func TestMenuCommandHandler_DetailAddsRepository(t *testing.T) {
	f := newMenuFixture(t, "2\nbitnami\nnginx\nmy-bitnami\n6\n", defaultConfig())
	f.chartRegistry.On("GetDetail", mock.Anything, "bitnami", "nginx").Return(nginxDetail(), nil).Once()
	addCall := f.helmClient.On("Execute", domain.RepoAdd{Name: "my-bitnami", URL: "https://charts.bitnami.com/bitnami"}).Return(nil).Once()
	f.helmClient.On("Execute", domain.RepoUpdate{}).Return(nil).Once().NotBefore(addCall)

	err := f.sut.Handle(t.Context())

	require.NoError(t, err)
	f.chartRegistry.AssertExpectations(t)
	f.helmClient.AssertExpectations(t)
	assert.Contains(t, f.out.String(), "Enter the repo name: Enter the chart name to get details: "+
		"Name: nginx\n"+
		"Description: NGINX Open Source is a web server\n"+
		"Version: 15.1.0\n"+
		"Maintainers: Broadcom, VMware\n"+
		"ID: 0c5b5ab6-0f1d-4e0b-9c4b-6d5c0f6f6c3e\n"+
		"Enter the local reference name: "+
		"Adding Helm repository from https://charts.bitnami.com/bitnami...\n")
}

func TestMenuCommandHandler_DetailFailureReturnsToMenu(t *testing.T) {
	f := newMenuFixture(t, "2\nbitnami\nmissing\n6\n", defaultConfig())
	registryErr := &domain.RegistryError{Op: "detail", URL: "https://artifacthub.io/api/v1/packages/helm/bitnami/missing", StatusCode: 404, Err: errors.New("404 Not Found")}
	f.chartRegistry.On("GetDetail", mock.Anything, "bitnami", "missing").Return(nil, registryErr)

	err := f.sut.Handle(t.Context())

	require.NoError(t, err)
	assert.Contains(t, f.errOut.String(), "x catalog detail")
	assert.Equal(t, 2, strings.Count(f.out.String(), "Helm Chart Management"))
	assert.NotContains(t, f.out.String(), "Enter the local reference name: ")
	f.helmClient.AssertNotCalled(t, "Execute", mock.Anything)
}

func TestMenuCommandHandler_FailFastReturnsError(t *testing.T) {
	config := defaultConfig()
	config.FailFast = true
	f := newMenuFixture(t, "2\nbitnami\nnginx\nmy-bitnami\n6\n", config)
	f.chartRegistry.On("GetDetail", mock.Anything, "bitnami", "nginx").Return(nginxDetail(), nil)
	addErr := &domain.ExternalCommandError{Args: []string{"repo", "add"}, ExitCode: 1, Err: errors.New("exit status 1")}
	f.helmClient.On("Execute", mock.AnythingOfType("domain.RepoAdd")).Return(addErr)

	err := f.sut.Handle(t.Context())

	var cmdErr *domain.ExternalCommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.NotContains(t, f.out.String(), "Exiting...")
}

func TestMenuCommandHandler_EndOfInputExits(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"inside an action", "1\n"},
		{"after invalid choice", "9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMenuFixture(t, tt.input, defaultConfig())

			err := f.sut.Handle(t.Context())

			assert.NoError(t, err)
			f.chartRegistry.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestMenuCommandHandler_InstallUsesKubeNamespace(t *testing.T) {
	f := newMenuFixture(t, "3\nbitnami/nginx\nweb\n\nY\n6\n", releaseActionsConfig())
	f.kubeContext.On("CurrentNamespace").Return("apps", nil)
	f.kubeContext.On("NamespaceExists", mock.Anything, "apps").Return(true, nil)
	f.helmClient.On("Execute", domain.Upgrade{Release: "web", Chart: "bitnami/nginx", Namespace: "apps"}).Return(nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.helmClient.AssertExpectations(t)
	assert.Contains(t, f.out.String(), "Enter the namespace (default 'apps'): ")
	assert.Contains(t, f.out.String(), "Upgrading bitnami/nginx to release web in apps namespace...")
	assert.Empty(t, f.errOut.String())
}

func TestMenuCommandHandler_InstallWarnsAboutMissingNamespace(t *testing.T) {
	f := newMenuFixture(t, "3\nbitnami/nginx\nweb\nprod\nn\n6\n", releaseActionsConfig())
	f.kubeContext.On("CurrentNamespace").Return("", errors.New("no kubeconfig"))
	f.kubeContext.On("NamespaceExists", mock.Anything, "prod").Return(false, nil)
	f.helmClient.On("Execute", domain.Install{Release: "web", Chart: "bitnami/nginx", Namespace: "prod"}).Return(nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.helmClient.AssertExpectations(t)
	assert.Contains(t, f.out.String(), "Enter the namespace (default 'default'): ")
	assert.Contains(t, f.errOut.String(), "! namespace prod does not exist in the current cluster")
}

func TestMenuCommandHandler_InstallIgnoresUnreachableCluster(t *testing.T) {
	f := newMenuFixture(t, "3\nbitnami/nginx\nweb\n\nn\n6\n", releaseActionsConfig())
	f.kubeContext.On("CurrentNamespace").Return("default", nil)
	f.kubeContext.On("NamespaceExists", mock.Anything, "default").Return(false, errors.New("connection refused"))
	f.helmClient.On("Execute", domain.Install{Release: "web", Chart: "bitnami/nginx", Namespace: "default"}).Return(nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.helmClient.AssertExpectations(t)
	assert.Empty(t, f.errOut.String())
}

func TestMenuCommandHandler_ListReleases(t *testing.T) {
	f := newMenuFixture(t, "4\n\n4\napps\n6\n", releaseActionsConfig())
	f.helmClient.On("Execute", domain.List{}).Return(nil).Once()
	f.helmClient.On("Execute", domain.List{Namespace: "apps"}).Return(nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.helmClient.AssertExpectations(t)
}

func TestMenuCommandHandler_UninstallPromptsForRepositoryName(t *testing.T) {
	f := newMenuFixture(t, "5\nweb\ny\nbitnami\n6\n", releaseActionsConfig())
	f.helmClient.On("Execute", domain.Uninstall{Release: "web"}).Return(nil).Once()
	f.helmClient.On("Execute", domain.RepoRemove{Name: "bitnami"}).Return(nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.helmClient.AssertExpectations(t)
	assert.Contains(t, f.out.String(), "Enter the repository local reference name to remove: ")
}

func TestMenuCommandHandler_UninstallLegacyCleanupReusesReleaseName(t *testing.T) {
	config := releaseActionsConfig()
	config.LegacyRepoCleanup = true
	f := newMenuFixture(t, "5\nweb\ny\n6\n", config)
	f.helmClient.On("Execute", domain.Uninstall{Release: "web"}).Return(nil).Once()
	f.helmClient.On("Execute", domain.RepoRemove{Name: "web"}).Return(nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.helmClient.AssertExpectations(t)
	assert.NotContains(t, f.out.String(), "Enter the repository local reference name to remove: ")
}

func TestMenuCommandHandler_UninstallWithoutCleanup(t *testing.T) {
	f := newMenuFixture(t, "5\nweb\nn\n6\n", releaseActionsConfig())
	f.helmClient.On("Execute", domain.Uninstall{Release: "web"}).Return(nil).Once()

	require.NoError(t, f.sut.Handle(t.Context()))

	f.helmClient.AssertExpectations(t)
	f.helmClient.AssertNumberOfCalls(t, "Execute", 1)
}

func countLinesWithPrefix(s, prefix string) int {
	count := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}
	return count
}
