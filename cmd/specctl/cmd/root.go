// Package cmd implements the specctl CLI commands.
package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/phone-spec-scraper/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "specctl",
		Short: "CLI client for the phone spec scraper",
		Long: "specctl is a command-line client for the phone spec scraper API.\n" +
			"It lets you search for phones, extract and reconcile spec sheets,\n" +
			"browse stored sheets, and trigger refreshes from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.specctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	// Reconciliation requests wait on the completion backend.
	rootCmd.PersistentFlags().
		Duration("timeout", 2*time.Minute, "request timeout")

	for _, name := range []string{"server", "output", "timeout"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(sheetsCmd())
	rootCmd.AddCommand(refreshCmd())
	rootCmd.AddCommand(jobsCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".specctl")
	}

	viper.SetEnvPrefix("SPECCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(
		viper.GetString("server"),
		apiclient.WithHTTPClient(&http.Client{Timeout: viper.GetDuration("timeout")}),
	)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
