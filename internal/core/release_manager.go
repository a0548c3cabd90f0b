package core

import (
	"fmt"
	"io"

	"chartmenu/internal/cli/log"
	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"
)

// ReleaseManager registers chart repositories and manages releases through helm. Every
// method blocks until helm exits.
type ReleaseManager struct {
	helmClient ports.HelmClient
	terminal   ports.TerminalInput
	out        io.Writer
}

func ProvideReleaseManager(
	helmClient ports.HelmClient,
	terminal ports.TerminalInput,
	console Console,
) *ReleaseManager {
	return &ReleaseManager{
		helmClient: helmClient,
		terminal:   terminal,
		out:        console.Out,
	}
}

// AddRepository prompts for a local reference name, registers repoURL under it and
// refreshes the repository indexes.
func (m *ReleaseManager) AddRepository(repoURL string) error {
	name, err := m.terminal.ReadLine("Enter the local reference name: ")
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Adding Helm repository from %s...\n", repoURL)
	if err := m.helmClient.Execute(domain.RepoAdd{Name: name, URL: repoURL}); err != nil {
		return err
	}
	return m.helmClient.Execute(domain.RepoUpdate{})
}

func (m *ReleaseManager) InstallOrUpgrade(chartName, releaseName, namespace string, upgrade bool) error {
	if upgrade {
		fmt.Fprintf(m.out, "Upgrading %s to release %s in %s namespace...\n", chartName, releaseName, namespace)
		return m.helmClient.Execute(domain.Upgrade{Release: releaseName, Chart: chartName, Namespace: namespace})
	}

	fmt.Fprintf(m.out, "Installing %s as release %s in %s namespace...\n", chartName, releaseName, namespace)
	return m.helmClient.Execute(domain.Install{Release: releaseName, Chart: chartName, Namespace: namespace})
}

// ListReleases prints the releases of namespace, or of every namespace when empty. The
// listing is best effort: a helm failure is logged, not returned.
func (m *ReleaseManager) ListReleases(namespace string) error {
	if err := m.helmClient.Execute(domain.List{Namespace: namespace}); err != nil {
		log.Logger().WithField("namespace", namespace).Warnf("listing releases failed: %v", err)
	}
	return nil
}

// Uninstall removes the release and, when cleanupRepo is set, the repository registered
// as repositoryLocalName.
func (m *ReleaseManager) Uninstall(releaseName, repositoryLocalName string, cleanupRepo bool) error {
	fmt.Fprintf(m.out, "Uninstalling release %s...\n", releaseName)
	if err := m.helmClient.Execute(domain.Uninstall{Release: releaseName}); err != nil {
		return err
	}

	if cleanupRepo {
		fmt.Fprintln(m.out, "Cleaning up Helm repositories...")
		return m.helmClient.Execute(domain.RepoRemove{Name: repositoryLocalName})
	}
	return nil
}
