package domain

import (
	"math/rand"
	"testing"
)

func TestMinimumViewsForPayoutRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		config := CampaignRateConfig{
			CPMRate:            0.01 + rng.Float64()*20,
			FlatFee:            rng.Float64() * 10,
			MinPayoutThreshold: rng.Float64() * 100,
			MaxPayoutCap:       1000,
		}

		views := MinimumViewsForPayout(config)
		if views == UnreachableViews {
			t.Fatalf("positive cpm rate reported unreachable: %+v", config)
		}
		if !MeetsMinimumThreshold(views, config) {
			t.Fatalf("minimum views %d does not meet threshold: %+v", views, config)
		}
		if views > 0 && MeetsMinimumThreshold(views-1, config) {
			t.Fatalf("views-1 (%d) already meets threshold: %+v", views-1, config)
		}
	}
}

func TestMinimumViewsForPayoutFlatFeeCoversThreshold(t *testing.T) {
	config := CampaignRateConfig{
		CPMRate:            5,
		FlatFee:            10,
		MinPayoutThreshold: 10,
		MaxPayoutCap:       500,
	}
	if got := MinimumViewsForPayout(config); got != 0 {
		t.Fatalf("expected 0 views when flat fee covers the threshold, got %d", got)
	}
}

func TestMinimumViewsForPayoutUnreachable(t *testing.T) {
	config := CampaignRateConfig{
		CPMRate:            0,
		FlatFee:            1,
		MinPayoutThreshold: 10,
		MaxPayoutCap:       500,
	}
	if got := MinimumViewsForPayout(config); got != UnreachableViews {
		t.Fatalf("expected unreachable sentinel, got %d", got)
	}
	if MeetsMinimumThreshold(1_000_000_000, config) {
		t.Fatal("no view count should meet the threshold with zero cpm rate")
	}
}

func TestMinimumViewsForPayoutExactBoundary(t *testing.T) {
	// 10 threshold at 5 per thousand views needs exactly 2000 views.
	config := CampaignRateConfig{
		CPMRate:            5,
		FlatFee:            0,
		MinPayoutThreshold: 10,
		MaxPayoutCap:       500,
	}
	if got := MinimumViewsForPayout(config); got != 2000 {
		t.Fatalf("expected 2000 views, got %d", got)
	}
}

// The threshold comparison absorbs rateEpsilon of float dust: a quick total
// within 1e-9 of the threshold counts, anything further below does not.
func TestQuickCheckThresholdTolerance(t *testing.T) {
	config := CampaignRateConfig{
		CPMRate:            1,
		FlatFee:            10 - 5e-10,
		MinPayoutThreshold: 10,
		MaxPayoutCap:       500,
	}
	if !MeetsMinimumThreshold(0, config) {
		t.Fatal("total within epsilon of the threshold should pass")
	}

	config.FlatFee = 10 - 1e-8
	if MeetsMinimumThreshold(0, config) {
		t.Fatal("total more than epsilon below the threshold should fail")
	}
}

// The quick check deliberately ignores the bonus rate, so a submission can
// fail it while the full breakdown still pays out.
func TestQuickCheckExcludesBonus(t *testing.T) {
	config := CampaignRateConfig{
		CPMRate:            1,
		FlatFee:            0,
		BonusRate:          9,
		MinPayoutThreshold: 5,
		MaxPayoutCap:       500,
	}
	views := int64(1000) // cpm alone pays 1.00, with bonus 10.00

	if MeetsMinimumThreshold(views, config) {
		t.Fatal("quick check should fail without the bonus contribution")
	}
	breakdown := CalculatePayout(views, config)
	if !breakdown.MeetsMinimum {
		t.Fatal("full breakdown should meet the minimum via the bonus")
	}
	if breakdown.FinalPayout != 10.00 {
		t.Fatalf("expected final payout 10.00, got %v", breakdown.FinalPayout)
	}
}
