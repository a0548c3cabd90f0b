package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chartmenu/internal/cli/log"
	"chartmenu/internal/cli/output"
	"chartmenu/internal/core"
	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"
)

const (
	choiceSearch    = "1"
	choiceDetail    = "2"
	choiceInstall   = "3"
	choiceList      = "4"
	choiceUninstall = "5"
	choiceExit      = "6"
)

// errExitMenu ends the menu loop with success.
var errExitMenu = errors.New("exit menu")

// MenuAction is one numbered entry of the interactive menu. A disabled action is listed
// but selecting it is treated as an invalid choice.
type MenuAction struct {
	Key     string
	Label   string
	Enabled bool
	Run     func(ctx context.Context) error
}

// MenuCommandHandler runs the interactive chart management menu.
type MenuCommandHandler struct {
	searchHandler  SearchCommandHandler
	releaseManager *core.ReleaseManager
	kubeContext    ports.KubeContext
	terminal       ports.TerminalInput
	config         *domain.Config
	console        core.Console
	actions        []MenuAction
}

func ProvideMenuCommandHandler(
	searchHandler SearchCommandHandler,
	releaseManager *core.ReleaseManager,
	kubeContext ports.KubeContext,
	terminal ports.TerminalInput,
	config *domain.Config,
	console core.Console,
) *MenuCommandHandler {
	h := &MenuCommandHandler{
		searchHandler:  searchHandler,
		releaseManager: releaseManager,
		kubeContext:    kubeContext,
		terminal:       terminal,
		config:         config,
		console:        console,
	}
	h.actions = []MenuAction{
		{Key: choiceSearch, Label: "List Available Charts", Enabled: true, Run: h.searchCharts},
		{Key: choiceDetail, Label: "Get Chart Details", Enabled: true, Run: h.showChartDetail},
		{Key: choiceInstall, Label: "Install/Upgrade Chart", Enabled: config.ReleaseActions, Run: h.installOrUpgrade},
		{Key: choiceList, Label: "List Deployed Releases", Enabled: config.ReleaseActions, Run: h.listReleases},
		{Key: choiceUninstall, Label: "Uninstall a Release", Enabled: config.ReleaseActions, Run: h.uninstall},
		{Key: choiceExit, Label: "Exit", Enabled: true, Run: h.exit},
	}
	return h
}

// Actions returns the menu entries in display order.
func (h *MenuCommandHandler) Actions() []MenuAction {
	return h.actions
}

// Handle shows the menu until the user exits or input ends. Failed actions are reported
// and the menu is shown again, unless fail-fast is configured.
func (h *MenuCommandHandler) Handle(ctx context.Context) error {
	for {
		h.printMenu()
		choice, err := h.terminal.ReadLine("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(h.console.Out)
			return nil
		}
		if err != nil {
			return err
		}

		action := h.lookup(choice)
		if action == nil || !action.Enabled {
			fmt.Fprintln(h.console.Out, "Invalid choice. Please try again.")
			continue
		}

		err = action.Run(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errExitMenu):
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(h.console.Out)
			return nil
		case h.config.FailFast:
			return err
		default:
			log.Logger().WithField("choice", choice).Debugf("menu action failed: %v", err)
			output.PrintError(h.console.Err, err.Error())
		}
	}
}

func (h *MenuCommandHandler) printMenu() {
	fmt.Fprintln(h.console.Out)
	output.PrintHeader(h.console.Out, "Helm Chart Management")
	for _, action := range h.actions {
		fmt.Fprintf(h.console.Out, "%s. %s\n", action.Key, action.Label)
	}
}

func (h *MenuCommandHandler) lookup(choice string) *MenuAction {
	for i := range h.actions {
		if h.actions[i].Key == choice {
			return &h.actions[i]
		}
	}
	return nil
}

func (h *MenuCommandHandler) searchCharts(ctx context.Context) error {
	keyword, err := h.terminal.ReadLine("Enter keyword to search for charts: ")
	if err != nil {
		return err
	}
	limitAnswer, err := h.terminal.ReadLine(
		fmt.Sprintf("Enter the maximum number of results (default %d): ", h.config.SearchLimit),
	)
	if err != nil {
		return err
	}

	return h.searchHandler.Handle(ctx, keyword, h.parseLimit(limitAnswer))
}

// parseLimit returns 0, meaning the configured default, for empty or invalid answers.
func (h *MenuCommandHandler) parseLimit(answer string) int {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0
	}
	limit, err := strconv.Atoi(answer)
	if err != nil || limit <= 0 {
		output.PrintWarning(h.console.Err, fmt.Sprintf("invalid limit '%s', using %d", answer, h.config.SearchLimit))
		return 0
	}
	return limit
}

func (h *MenuCommandHandler) showChartDetail(ctx context.Context) error {
	repositoryName, err := h.terminal.ReadLine("Enter the repo name: ")
	if err != nil {
		return err
	}
	chartName, err := h.terminal.ReadLine("Enter the chart name to get details: ")
	if err != nil {
		return err
	}

	detail, err := h.searchHandler.HandleShow(ctx, repositoryName, chartName)
	if err != nil {
		return err
	}

	return h.releaseManager.AddRepository(detail.Repository.URL)
}

func (h *MenuCommandHandler) installOrUpgrade(ctx context.Context) error {
	chartName, err := h.terminal.ReadLine("Enter the chart name: ")
	if err != nil {
		return err
	}
	releaseName, err := h.terminal.ReadLine("Enter the release name: ")
	if err != nil {
		return err
	}

	defaultNamespace := "default"
	if namespace, err := h.kubeContext.CurrentNamespace(); err == nil {
		defaultNamespace = namespace
	} else {
		log.Logger().Debugf("using namespace %s: %v", defaultNamespace, err)
	}
	namespace, err := h.terminal.ReadLine(fmt.Sprintf("Enter the namespace (default '%s'): ", defaultNamespace))
	if err != nil {
		return err
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	upgrade, err := h.confirm("Do you want to upgrade an existing release? (y/n): ")
	if err != nil {
		return err
	}

	exists, err := h.kubeContext.NamespaceExists(ctx, namespace)
	if err != nil {
		log.Logger().WithField("namespace", namespace).Debugf("skipping namespace check: %v", err)
	} else if !exists {
		output.PrintWarning(h.console.Err, fmt.Sprintf("namespace %s does not exist in the current cluster", namespace))
	}

	return h.releaseManager.InstallOrUpgrade(chartName, releaseName, namespace, upgrade)
}

func (h *MenuCommandHandler) listReleases(_ context.Context) error {
	namespace, err := h.terminal.ReadLine("Enter the namespace to list releases (or press Enter for all namespaces): ")
	if err != nil {
		return err
	}
	return h.releaseManager.ListReleases(namespace)
}

func (h *MenuCommandHandler) uninstall(_ context.Context) error {
	releaseName, err := h.terminal.ReadLine("Enter the release name to uninstall: ")
	if err != nil {
		return err
	}
	cleanupRepo, err := h.confirm("Do you want to clean up the Helm repository as well? (y/n): ")
	if err != nil {
		return err
	}

	repositoryLocalName := ""
	if cleanupRepo {
		if h.config.LegacyRepoCleanup {
			repositoryLocalName = releaseName
		} else {
			repositoryLocalName, err = h.terminal.ReadLine("Enter the repository local reference name to remove: ")
			if err != nil {
				return err
			}
		}
	}

	return h.releaseManager.Uninstall(releaseName, repositoryLocalName, cleanupRepo)
}

func (h *MenuCommandHandler) exit(_ context.Context) error {
	fmt.Fprintln(h.console.Out, "Exiting...")
	return errExitMenu
}

func (h *MenuCommandHandler) confirm(prompt string) (bool, error) {
	answer, err := h.terminal.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}
