package rates

import (
	"context"

	payoutdomain "clipops/contexts/finance-core/payout-engine/domain"
	"clipops/internal/platform/commerce"
)

// Static resolves rate configs from in-process data: platform defaults plus
// optional per-campaign override layers. Used by tests and local runs.
type Static struct {
	Defaults  payoutdomain.CampaignRateConfig
	Overrides map[string]payoutdomain.RateOverrides
}

func (s Static) ResolveRateConfig(_ context.Context, campaignID string) (payoutdomain.CampaignRateConfig, error) {
	if overrides, ok := s.Overrides[campaignID]; ok {
		return payoutdomain.ResolveRateConfig(s.Defaults, overrides), nil
	}
	return s.Defaults, nil
}

// Remote resolves rate configs by fetching the campaign from the platform and
// layering its pricing fields over the configured defaults.
type Remote struct {
	Client   *commerce.Client
	Defaults payoutdomain.CampaignRateConfig
}

func (r Remote) ResolveRateConfig(ctx context.Context, campaignID string) (payoutdomain.CampaignRateConfig, error) {
	campaign, err := r.Client.GetCampaign(ctx, campaignID)
	if err != nil {
		return payoutdomain.CampaignRateConfig{}, err
	}
	return payoutdomain.ResolveRateConfig(r.Defaults, payoutdomain.RateOverrides{
		CPMRate:            campaign.CPMRate,
		FlatFee:            campaign.FlatFee,
		BonusRate:          campaign.BonusRate,
		MinPayoutThreshold: campaign.MinPayoutThreshold,
		MaxPayoutCap:       campaign.MaxPayoutCap,
	}), nil
}
