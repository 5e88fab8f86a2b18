package main

import (
	"go-bankist/app"

	"github.com/spf13/cobra"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.Run(*configPath)
		},
	}
}

func newAccountsCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Print the seeded accounts with balance and summary figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.PrintAccounts(*configPath, cmd.OutOrStdout())
		},
	}
}
