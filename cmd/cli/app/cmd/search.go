package cmd

import (
	"chartmenu/cmd/cli/app"
	"chartmenu/internal/core"

	"github.com/spf13/cobra"
)

var searchLimit *int

func init() {
	searchLimit = searchCmd.Flags().IntP("limit", "l", 0, "Maximum number of results (defaults to searchLimit from the config file)")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Searches Artifact Hub for Helm charts",
	Long:  `Searches the Artifact Hub catalog for Helm charts matching the keyword and prints name, version, repository and description of each match.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSearchCommandHandler(core.ConfigPath(*configPath), configOverrides())
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), args[0], *searchLimit)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <repo> <chart>",
	Short: "Prints the details of a Helm chart",
	Long:  `Fetches the metadata of one chart from Artifact Hub and prints it. Unlike the menu, the chart repository is not added to helm.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSearchCommandHandler(core.ConfigPath(*configPath), configOverrides())
		if err != nil {
			return err
		}

		_, err = handler.HandleShow(cmd.Context(), args[0], args[1])
		return err
	},
}
