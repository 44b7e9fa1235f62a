package domain

// CampaignRateConfig is the effective pricing configuration applied to one
// submission. All monetary values are expressed in the platform currency and
// rounded to cents when they enter a breakdown.
type CampaignRateConfig struct {
	CPMRate            float64
	FlatFee            float64
	BonusRate          float64
	MinPayoutThreshold float64
	MaxPayoutCap       float64
}

// Valid reports whether the configuration can price submissions at all.
// A threshold above the cap is valid but degenerate: no submission can pay out.
func (c CampaignRateConfig) Valid() bool {
	return c.CPMRate >= 0 &&
		c.FlatFee >= 0 &&
		c.BonusRate >= 0 &&
		c.MinPayoutThreshold >= 0 &&
		c.MaxPayoutCap > 0
}

// Degenerate reports the valid-but-unpayable case.
func (c CampaignRateConfig) Degenerate() bool {
	return c.MinPayoutThreshold > c.MaxPayoutCap
}

// RateOverrides is one layer of a rate-config merge. Nil fields inherit the
// value from the layer below.
type RateOverrides struct {
	CPMRate            *float64
	FlatFee            *float64
	BonusRate          *float64
	MinPayoutThreshold *float64
	MaxPayoutCap       *float64
}

func (o RateOverrides) Empty() bool {
	return o.CPMRate == nil &&
		o.FlatFee == nil &&
		o.BonusRate == nil &&
		o.MinPayoutThreshold == nil &&
		o.MaxPayoutCap == nil
}

// ResolveRateConfig merges override layers onto defaults, later layers winning.
// Campaign-level overrides come before call-level overrides.
func ResolveRateConfig(defaults CampaignRateConfig, layers ...RateOverrides) CampaignRateConfig {
	resolved := defaults
	for _, layer := range layers {
		if layer.CPMRate != nil {
			resolved.CPMRate = *layer.CPMRate
		}
		if layer.FlatFee != nil {
			resolved.FlatFee = *layer.FlatFee
		}
		if layer.BonusRate != nil {
			resolved.BonusRate = *layer.BonusRate
		}
		if layer.MinPayoutThreshold != nil {
			resolved.MinPayoutThreshold = *layer.MinPayoutThreshold
		}
		if layer.MaxPayoutCap != nil {
			resolved.MaxPayoutCap = *layer.MaxPayoutCap
		}
	}
	return resolved
}
