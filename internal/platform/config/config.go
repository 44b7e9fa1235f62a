package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	payoutdomain "clipops/contexts/finance-core/payout-engine/domain"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string

	PlatformBaseURL string
	PlatformAPIKey  string
	WebhookSecret   string

	RateDefaultsFile string

	SweepCampaignID        string
	SweepInterval          time.Duration
	SweepAgeThresholdHours float64
	SweepMinViewCount      int64
	SweepBatchLimit        int

	EnableAutoApprove bool
	EnableSwaggerUI   bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "clipops"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,

		PlatformBaseURL: strings.TrimSpace(os.Getenv("PLATFORM_BASE_URL")),
		PlatformAPIKey:  strings.TrimSpace(os.Getenv("PLATFORM_API_KEY")),
		WebhookSecret:   os.Getenv("WEBHOOK_SECRET"),

		RateDefaultsFile: strings.TrimSpace(os.Getenv("RATES_FILE")),

		SweepCampaignID:        strings.TrimSpace(os.Getenv("SWEEP_CAMPAIGN_ID")),
		SweepInterval:          time.Duration(envInt("SWEEP_INTERVAL_SECONDS", 900)) * time.Second,
		SweepAgeThresholdHours: envFloat("SWEEP_AGE_THRESHOLD_HOURS", 72),
		SweepMinViewCount:      int64(envInt("SWEEP_MIN_VIEW_COUNT", 1000)),
		SweepBatchLimit:        envInt("SWEEP_BATCH_LIMIT", 100),

		EnableAutoApprove: envBool("ENABLE_AUTO_APPROVE", true),
		EnableSwaggerUI:   envBool("ENABLE_SWAGGER_UI", true),
	}, nil
}

// rateDefaultsFile is the YAML shape of the optional rate-defaults file.
type rateDefaultsFile struct {
	CPMRate            float64 `yaml:"cpm_rate"`
	FlatFee            float64 `yaml:"flat_fee"`
	BonusRate          float64 `yaml:"bonus_rate"`
	MinPayoutThreshold float64 `yaml:"min_payout_threshold"`
	MaxPayoutCap       float64 `yaml:"max_payout_cap"`
}

// LoadRateDefaults reads campaign rate defaults from a YAML file, falling back
// to env vars when no file is configured.
func LoadRateDefaults(path string) (payoutdomain.CampaignRateConfig, error) {
	if path == "" {
		return payoutdomain.CampaignRateConfig{
			CPMRate:            envFloat("DEFAULT_CPM_RATE", 1.0),
			FlatFee:            envFloat("DEFAULT_FLAT_FEE", 0),
			BonusRate:          envFloat("DEFAULT_BONUS_RATE", 0),
			MinPayoutThreshold: envFloat("DEFAULT_MIN_PAYOUT_THRESHOLD", 0),
			MaxPayoutCap:       envFloat("DEFAULT_MAX_PAYOUT_CAP", 1000),
		}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return payoutdomain.CampaignRateConfig{}, fmt.Errorf("read rate defaults file: %w", err)
	}
	var file rateDefaultsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return payoutdomain.CampaignRateConfig{}, fmt.Errorf("parse rate defaults file: %w", err)
	}
	return payoutdomain.CampaignRateConfig{
		CPMRate:            file.CPMRate,
		FlatFee:            file.FlatFee,
		BonusRate:          file.BonusRate,
		MinPayoutThreshold: file.MinPayoutThreshold,
		MaxPayoutCap:       file.MaxPayoutCap,
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
