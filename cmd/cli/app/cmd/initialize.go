package cmd

import (
	"chartmenu/cmd/cli/app"
	"chartmenu/internal/core"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Generates a new configuration file with default values",
	Long:  `A new configuration file is written to ~/.chartmenu.yaml, or to the path given with --config. It contains the default value of every option. The file is not created if it already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler(core.ConfigPath(*configPath))
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
