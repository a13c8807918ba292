// Package cmd implements the CLI commands for spec-scraper.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "spec-scraper",
	Short: "Ingest phone specification sheets",
	Long: "An API-first service that finds phone product pages, normalizes their " +
		"specification tables into a fixed taxonomy, optionally reconciles the " +
		"result through a completion backend, and keeps stored sheets fresh.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(scrapeCommand())
	rootCmd.AddCommand(searchCommand())
	rootCmd.AddCommand(openapiCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
