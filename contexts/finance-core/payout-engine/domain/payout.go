package domain

import "math"

// PayoutBreakdown is the itemized result of pricing one submission. It is
// always derived fresh from a view count and a rate config, never stored.
type PayoutBreakdown struct {
	ViewCount    int64   `json:"view_count"`
	CPMPayout    float64 `json:"cpm_payout"`
	FlatFee      float64 `json:"flat_fee"`
	BonusPayout  float64 `json:"bonus_payout"`
	GrossTotal   float64 `json:"gross_total"`
	CappedTotal  float64 `json:"capped_total"`
	MeetsMinimum bool    `json:"meets_minimum"`
	FinalPayout  float64 `json:"final_payout"`
	WasCapped    bool    `json:"was_capped"`
}

// CalculatePayout prices a view count against a rate config. The result is
// deterministic: FinalPayout is either exactly zero or a value between the
// minimum threshold and the cap inclusive.
func CalculatePayout(viewCount int64, config CampaignRateConfig) PayoutBreakdown {
	if viewCount < 0 {
		viewCount = 0
	}

	cpm := RoundCurrency(float64(viewCount) / 1000.0 * config.CPMRate)
	flat := RoundCurrency(config.FlatFee)
	bonus := 0.0
	if config.BonusRate > 0 {
		bonus = RoundCurrency(float64(viewCount) / 1000.0 * config.BonusRate)
	}

	gross := RoundCurrency(cpm + flat + bonus)
	capped := gross
	wasCapped := gross > config.MaxPayoutCap
	if wasCapped {
		capped = RoundCurrency(config.MaxPayoutCap)
	}

	meetsMinimum := capped >= config.MinPayoutThreshold
	final := 0.0
	if meetsMinimum {
		final = capped
	}

	return PayoutBreakdown{
		ViewCount:    viewCount,
		CPMPayout:    cpm,
		FlatFee:      flat,
		BonusPayout:  bonus,
		GrossTotal:   gross,
		CappedTotal:  capped,
		MeetsMinimum: meetsMinimum,
		FinalPayout:  final,
		WasCapped:    wasCapped,
	}
}

// RoundCurrency rounds to two decimal places, the platform's payout precision.
func RoundCurrency(value float64) float64 {
	return math.Round(value*100) / 100
}
