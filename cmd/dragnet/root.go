package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewetherby/dragnet/internal/advisory"
	"github.com/ewetherby/dragnet/internal/config"
	"github.com/ewetherby/dragnet/internal/logging"
	"github.com/ewetherby/dragnet/internal/probe"
	"github.com/ewetherby/dragnet/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dragnet",
	Short: "Open-source identity resolution from a person's name",
	Long: `dragnet expands a target name into candidate usernames and email
patterns, probes social platforms and link aggregators for matching
profiles, extracts contact details from what it finds, and aggregates
everything into a scored report.

Only publicly reachable pages are queried. Use responsibly and only
where you are authorized to investigate.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newProber builds the shared HTTP prober from the probing settings.
func newProber() *probe.Prober {
	timeout := time.Duration(cfg.Probing.TimeoutSeconds) * time.Second
	return probe.NewProber(timeout, cfg.Probing.UserAgent)
}

// newAdvisor returns the configured advisory client, or nil when the
// service is disabled or has no key. Callers fall back to rule-based
// candidate generation in that case.
func newAdvisor(disabled bool) advisory.Client {
	if disabled || !cfg.Advisory.Enabled || cfg.Advisory.APIKey == "" {
		return nil
	}
	return advisory.NewDeepSeekClient(cfg.Advisory.APIKey, cfg.Advisory.Model, cfg.Advisory.Endpoint)
}

// openHistory opens the investigation history database under ~/.dragnet.
func openHistory() (*store.Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".dragnet")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return store.Open(filepath.Join(dir, "history.db"))
}
