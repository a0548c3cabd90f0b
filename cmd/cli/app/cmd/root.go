package cmd

import (
	"errors"
	"fmt"
	"os"

	"chartmenu/cmd/cli/app"
	"chartmenu/internal/cli/log"
	"chartmenu/internal/core"
	"chartmenu/internal/core/domain"

	"github.com/spf13/cobra"
)

var (
	configPath           *string
	logLevel             *string
	enableReleaseActions *bool
	failFast             *bool
)

var rootCmd = &cobra.Command{
	Use:   "chartmenu",
	Short: "Interactive menu for finding and installing Helm charts",
	Long: `chartmenu searches the Artifact Hub catalog for Helm charts and drives the
helm binary to add chart repositories and manage releases.

Run without a subcommand to open the interactive menu. Configuration is read
from ~/.chartmenu.yaml when present. Run 'chartmenu initialize' to create it.

Common workflows:
  chartmenu                          Open the interactive menu
  chartmenu search nginx --limit 5   Search the catalog non-interactively
  chartmenu show bitnami nginx       Print the details of one chart
  chartmenu credentials set          Store an Artifact Hub API key`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.SetLevel(*logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectMenuCommandHandler(core.ConfigPath(*configPath), configOverrides())
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context())
	},
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", string(core.DefaultConfigPath), "Path to the configuration file")
	logLevel = rootCmd.PersistentFlags().String("log-level", "warning", fmt.Sprintf("Log level, one of %v", log.GetLevels()))
	enableReleaseActions = rootCmd.PersistentFlags().Bool("enable-release-actions", false, "Enable the install, list and uninstall menu entries")
	failFast = rootCmd.PersistentFlags().Bool("fail-fast", false, "Abort on the first failed menu action")
}

func configOverrides() core.ConfigOverrides {
	return core.ConfigOverrides{
		ReleaseActions: *enableReleaseActions,
		FailFast:       *failFast,
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode propagates the exit status of a failed helm invocation.
func exitCode(err error) int {
	var cmdErr *domain.ExternalCommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}
