package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withTempHome points the config path at a throwaway home directory.
func withTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DRAGNET_ADVISORY_KEY", "")
	t.Setenv("DEEPSEEK_API_KEY", "")
	return home
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Probing.Concurrency != 15 || cfg.Probing.TimeoutSeconds != 10 {
		t.Errorf("defaults not applied: %+v", cfg.Probing)
	}
	if !cfg.Advisory.Enabled || cfg.Advisory.Model != "deepseek-chat" {
		t.Errorf("advisory defaults wrong: %+v", cfg.Advisory)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	withTempHome(t)

	cfg := DefaultConfig()
	cfg.Advisory.APIKey = "secret"
	cfg.Probing.Concurrency = 8
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Advisory.APIKey != "secret" || loaded.Probing.Concurrency != 8 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestSaveUsesRestrictivePermissions(t *testing.T) {
	withTempHome(t)

	if err := DefaultConfig().Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	info, err := os.Stat(ConfigPath())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 600", perm)
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	home := withTempHome(t)

	dir := filepath.Join(home, ".dragnet")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load of corrupt file errored: %v", err)
	}
	if cfg.Probing.Concurrency != 15 {
		t.Errorf("corrupt file did not fall back to defaults: %+v", cfg.Probing)
	}
}

func TestLoadAppliesFloors(t *testing.T) {
	home := withTempHome(t)

	dir := filepath.Join(home, ".dragnet")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	// Valid JSON with zeroed probing values, as a hand-edit might leave.
	raw := `{"advisory": {"enabled": false}, "probing": {"concurrency": 0}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Advisory.Enabled {
		t.Error("explicit enabled=false overridden")
	}
	if cfg.Probing.Concurrency != 15 || cfg.Probing.UserAgent == "" {
		t.Errorf("floors not applied: %+v", cfg.Probing)
	}
}

func TestAutoPopulateFromEnv(t *testing.T) {
	withTempHome(t)
	t.Setenv("DEEPSEEK_API_KEY", "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Advisory.APIKey != "env-key" {
		t.Errorf("env key not picked up: %q", cfg.Advisory.APIKey)
	}

	// The config value wins over the environment.
	cfg.Advisory.APIKey = "file-key"
	cfg.AutoPopulateFromEnv()
	if cfg.Advisory.APIKey != "file-key" {
		t.Errorf("env overrode file key: %q", cfg.Advisory.APIKey)
	}

	// The dedicated variable wins over the provider one.
	t.Setenv("DRAGNET_ADVISORY_KEY", "dragnet-key")
	fresh := DefaultConfig()
	fresh.AutoPopulateFromEnv()
	if fresh.Advisory.APIKey != "dragnet-key" {
		t.Errorf("dedicated env var not preferred: %q", fresh.Advisory.APIKey)
	}
}
