package cmd

import (
	"chartmenu/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	credentialsCmd.AddCommand(credentialsSetCmd)
	credentialsCmd.AddCommand(credentialsDeleteCmd)
	rootCmd.AddCommand(credentialsCmd)
}

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manages the Artifact Hub API key",
	Long:  `Commands for storing and removing the Artifact Hub API key used to authenticate catalog requests. The key is kept in the system keyring.`,
}

var credentialsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Stores an API key in the system keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectCredentialsCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSet()
	},
}

var credentialsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Removes the API key from the system keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectCredentialsCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleDelete()
	},
}
