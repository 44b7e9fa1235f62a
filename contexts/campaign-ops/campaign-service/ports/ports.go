package ports

import (
	"context"

	"clipops/contexts/campaign-ops/campaign-service/domain/entities"
)

type CampaignPage struct {
	Items      []entities.Campaign
	NextCursor string
	HasMore    bool
}

// PlatformAPI is the remote commerce platform surface the campaign module
// passes through to. All records live remotely.
type PlatformAPI interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) (entities.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign entities.Campaign) (entities.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListCampaigns(ctx context.Context, cursor string, limit int) (CampaignPage, error)
	CreatePromoCode(ctx context.Context, promo entities.PromoCode) (entities.PromoCode, error)
	CreatePlan(ctx context.Context, plan entities.PricingPlan) (entities.PricingPlan, error)
}
