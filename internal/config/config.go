package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// Advisory service (optional strategy suggestions)
	Advisory AdvisorySettings `json:"advisory"`

	// Probing behavior
	Probing ProbingSettings `json:"probing"`

	// UI preferences
	UI UISettings `json:"ui"`
}

// AdvisorySettings holds the external advisory service credentials.
type AdvisorySettings struct {
	Enabled  bool   `json:"enabled"`
	APIKey   string `json:"api_key,omitempty"`
	Endpoint string `json:"endpoint,omitempty"` // Custom endpoint override
	Model    string `json:"model,omitempty"`
}

// ProbingSettings controls the platform probe fan-out.
type ProbingSettings struct {
	Concurrency    int    `json:"concurrency"`     // Max parallel probes
	TimeoutSeconds int    `json:"timeout_seconds"` // Per-probe HTTP timeout
	UserAgent      string `json:"user_agent"`
	UsernameBudget int    `json:"username_budget"` // Usernames probed per platform
	LinkHubBudget  int    `json:"link_hub_budget"` // Usernames probed on link aggregators
}

// UISettings holds UI preferences
type UISettings struct {
	Theme      string `json:"theme"`
	ResultRows int    `json:"result_rows"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Advisory: AdvisorySettings{
			Enabled: true,
			Model:   "deepseek-chat",
		},
		Probing: ProbingSettings{
			Concurrency:    15,
			TimeoutSeconds: 10,
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			UsernameBudget: 10,
			LinkHubBudget:  5,
		},
		UI: UISettings{
			Theme:      "dark",
			ResultRows: 20,
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dragnet", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	cfg.applyFloors()
	cfg.AutoPopulateFromEnv()
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600) // Restrictive permissions for API keys
}

// AutoPopulateFromEnv fills in the advisory API key from environment variables.
// The config file wins if both are set.
func (c *Config) AutoPopulateFromEnv() {
	if c.Advisory.APIKey != "" {
		return
	}
	if key := os.Getenv("DRAGNET_ADVISORY_KEY"); key != "" {
		c.Advisory.APIKey = key
		return
	}
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		c.Advisory.APIKey = key
	}
}

// applyFloors fixes up zero values from hand-edited config files.
func (c *Config) applyFloors() {
	def := DefaultConfig()
	if c.Probing.Concurrency <= 0 {
		c.Probing.Concurrency = def.Probing.Concurrency
	}
	if c.Probing.TimeoutSeconds <= 0 {
		c.Probing.TimeoutSeconds = def.Probing.TimeoutSeconds
	}
	if c.Probing.UserAgent == "" {
		c.Probing.UserAgent = def.Probing.UserAgent
	}
	if c.Probing.UsernameBudget <= 0 {
		c.Probing.UsernameBudget = def.Probing.UsernameBudget
	}
	if c.Probing.LinkHubBudget <= 0 {
		c.Probing.LinkHubBudget = def.Probing.LinkHubBudget
	}
	if c.Advisory.Model == "" {
		c.Advisory.Model = def.Advisory.Model
	}
}
