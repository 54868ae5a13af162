// Package main is the entry point for the perkwatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perkwatch/perkwatch/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perkwatch",
		Short: "Perkwatch competitor enrichment server",
		Long:  `Perkwatch enriches competitor records with AI-generated loyalty-program summaries and serves them over HTTP.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
