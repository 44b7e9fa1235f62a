package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServiceName != "clipops" {
		t.Fatalf("unexpected service name %q", cfg.ServiceName)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("unexpected port %q", cfg.HTTPPort)
	}
	if cfg.SweepInterval != 15*time.Minute {
		t.Fatalf("unexpected sweep interval %v", cfg.SweepInterval)
	}
	if cfg.SweepAgeThresholdHours != 72 || cfg.SweepMinViewCount != 1000 || cfg.SweepBatchLimit != 100 {
		t.Fatalf("unexpected sweep policy defaults %+v", cfg)
	}
	if !cfg.EnableAutoApprove || !cfg.EnableSwaggerUI {
		t.Fatalf("expected feature flags on by default, got %+v", cfg)
	}
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "clipops-worker")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SWEEP_INTERVAL_SECONDS", "30")
	t.Setenv("SWEEP_CAMPAIGN_ID", " camp_1 ")
	t.Setenv("ENABLE_AUTO_APPROVE", "off")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServiceName != "clipops-worker" || cfg.HTTPPort != "9090" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Fatalf("unexpected sweep interval %v", cfg.SweepInterval)
	}
	if cfg.SweepCampaignID != "camp_1" {
		t.Fatalf("campaign id not trimmed, got %q", cfg.SweepCampaignID)
	}
	if cfg.EnableAutoApprove {
		t.Fatal("expected auto approve disabled")
	}
}

func TestLoadRateDefaultsFromEnv(t *testing.T) {
	t.Setenv("DEFAULT_CPM_RATE", "2.5")
	t.Setenv("DEFAULT_MIN_PAYOUT_THRESHOLD", "10")

	defaults, err := LoadRateDefaults("")
	if err != nil {
		t.Fatalf("load rate defaults failed: %v", err)
	}
	if defaults.CPMRate != 2.5 || defaults.MinPayoutThreshold != 10 {
		t.Fatalf("env rates not applied: %+v", defaults)
	}
	if defaults.MaxPayoutCap != 1000 {
		t.Fatalf("expected fallback cap 1000, got %v", defaults.MaxPayoutCap)
	}
	if !defaults.Valid() {
		t.Fatalf("default rate config should be valid: %+v", defaults)
	}
}

func TestLoadRateDefaultsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	contents := "cpm_rate: 3.0\nflat_fee: 5\nbonus_rate: 0.5\nmin_payout_threshold: 20\nmax_payout_cap: 500\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write rates file: %v", err)
	}

	defaults, err := LoadRateDefaults(path)
	if err != nil {
		t.Fatalf("load rate defaults failed: %v", err)
	}
	if defaults.CPMRate != 3.0 || defaults.FlatFee != 5 || defaults.BonusRate != 0.5 {
		t.Fatalf("file rates not applied: %+v", defaults)
	}
	if defaults.MinPayoutThreshold != 20 || defaults.MaxPayoutCap != 500 {
		t.Fatalf("file limits not applied: %+v", defaults)
	}
}

func TestLoadRateDefaultsMissingFile(t *testing.T) {
	_, err := LoadRateDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRateDefaultsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	if err := os.WriteFile(path, []byte("cpm_rate: [broken"), 0o600); err != nil {
		t.Fatalf("write rates file: %v", err)
	}
	if _, err := LoadRateDefaults(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
