package domain

import "testing"

func ptr(v float64) *float64 { return &v }

func TestResolveRateConfigLayering(t *testing.T) {
	defaults := CampaignRateConfig{
		CPMRate:            1,
		FlatFee:            0,
		BonusRate:          0,
		MinPayoutThreshold: 5,
		MaxPayoutCap:       100,
	}
	campaign := RateOverrides{CPMRate: ptr(2), MaxPayoutCap: ptr(500)}
	call := RateOverrides{CPMRate: ptr(3), FlatFee: ptr(1.5)}

	resolved := ResolveRateConfig(defaults, campaign, call)
	if resolved.CPMRate != 3 {
		t.Fatalf("call layer should win cpm rate, got %v", resolved.CPMRate)
	}
	if resolved.FlatFee != 1.5 {
		t.Fatalf("call layer flat fee should apply, got %v", resolved.FlatFee)
	}
	if resolved.MaxPayoutCap != 500 {
		t.Fatalf("campaign layer cap should survive, got %v", resolved.MaxPayoutCap)
	}
	if resolved.MinPayoutThreshold != 5 {
		t.Fatalf("unset fields should inherit defaults, got %v", resolved.MinPayoutThreshold)
	}
}

func TestResolveRateConfigNoLayers(t *testing.T) {
	defaults := CampaignRateConfig{CPMRate: 1, MinPayoutThreshold: 5, MaxPayoutCap: 100}
	if got := ResolveRateConfig(defaults); got != defaults {
		t.Fatalf("no layers should return defaults unchanged, got %+v", got)
	}
	if got := ResolveRateConfig(defaults, RateOverrides{}); got != defaults {
		t.Fatalf("empty layer should return defaults unchanged, got %+v", got)
	}
}

func TestRateConfigValidity(t *testing.T) {
	valid := CampaignRateConfig{CPMRate: 1, MaxPayoutCap: 100}
	if !valid.Valid() {
		t.Fatal("expected config to be valid")
	}
	if (CampaignRateConfig{CPMRate: -1, MaxPayoutCap: 100}).Valid() {
		t.Fatal("negative cpm rate should be invalid")
	}
	if (CampaignRateConfig{CPMRate: 1, MaxPayoutCap: 0}).Valid() {
		t.Fatal("zero cap should be invalid")
	}

	degenerate := CampaignRateConfig{CPMRate: 1, MinPayoutThreshold: 200, MaxPayoutCap: 100}
	if !degenerate.Valid() || !degenerate.Degenerate() {
		t.Fatal("threshold above cap should be valid but degenerate")
	}
}

func TestRateOverridesEmpty(t *testing.T) {
	if !(RateOverrides{}).Empty() {
		t.Fatal("zero overrides should be empty")
	}
	if (RateOverrides{FlatFee: ptr(0)}).Empty() {
		t.Fatal("a set pointer, even to zero, is not empty")
	}
}
