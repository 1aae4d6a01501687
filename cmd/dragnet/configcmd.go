package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewetherby/dragnet/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Config file: %s\n\n", config.ConfigPath())
		fmt.Printf("Advisory enabled:  %v\n", cfg.Advisory.Enabled)
		fmt.Printf("Advisory model:    %s\n", cfg.Advisory.Model)
		fmt.Printf("Advisory key set:  %v\n", cfg.Advisory.APIKey != "")
		fmt.Printf("Probe concurrency: %d\n", cfg.Probing.Concurrency)
		fmt.Printf("Probe timeout:     %ds\n", cfg.Probing.TimeoutSeconds)
		fmt.Printf("Username budget:   %d\n", cfg.Probing.UsernameBudget)
		fmt.Printf("Link hub budget:   %d\n", cfg.Probing.LinkHubBudget)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", config.ConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
