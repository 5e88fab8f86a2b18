package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title           Bankist API
// @version         1.0
// @description     In-memory banking ledger: login, transfers, loans and account closure.

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root CLI command with all subcommands registered.
func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "bankist",
		Short: "In-memory banking ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yml")

	rootCmd.AddCommand(newServeCommand(&configPath))
	rootCmd.AddCommand(newAccountsCommand(&configPath))

	return rootCmd
}
