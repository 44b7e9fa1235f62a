package domain

import "math"

// UnreachableViews is returned by MinimumViewsForPayout when no view count can
// clear the minimum payout threshold: a zero CPM rate with a flat fee below
// the threshold.
const UnreachableViews = int64(math.MaxInt64)

// rateEpsilon absorbs float dust from rate division so the quick check and
// MinimumViewsForPayout round-trip exactly.
const rateEpsilon = 1e-9

// MeetsMinimumThreshold is the quick eligibility pre-check used before a full
// breakdown is computed. It sums CPM payout and flat fee only; the bonus rate
// is intentionally excluded so the check stays conservative. The comparison
// carries rateEpsilon of slack on purpose: a quick total within 1e-9 of the
// threshold counts as meeting it, which keeps the check in lockstep with
// MinimumViewsForPayout at the exact boundary view count.
func MeetsMinimumThreshold(viewCount int64, config CampaignRateConfig) bool {
	if viewCount < 0 {
		viewCount = 0
	}
	quick := float64(viewCount)/1000.0*config.CPMRate + config.FlatFee
	return quick >= config.MinPayoutThreshold-rateEpsilon
}

// MinimumViewsForPayout computes the smallest view count that satisfies
// MeetsMinimumThreshold, crediting any contribution from the flat fee.
func MinimumViewsForPayout(config CampaignRateConfig) int64 {
	if config.FlatFee >= config.MinPayoutThreshold {
		return 0
	}
	if config.CPMRate <= 0 {
		return UnreachableViews
	}
	needed := (config.MinPayoutThreshold - config.FlatFee) / config.CPMRate * 1000.0
	views := int64(math.Ceil(needed - rateEpsilon))
	if views < 0 {
		return 0
	}
	return views
}
