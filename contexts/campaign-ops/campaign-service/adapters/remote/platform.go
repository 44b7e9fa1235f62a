package remote

import (
	"context"
	"errors"
	"fmt"

	"clipops/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "clipops/contexts/campaign-ops/campaign-service/domain/errors"
	"clipops/contexts/campaign-ops/campaign-service/ports"
	"clipops/internal/platform/commerce"
)

// PlatformAPI adapts the commerce client to the campaign ports.
type PlatformAPI struct {
	Client *commerce.Client
}

func (p PlatformAPI) CreateCampaign(ctx context.Context, campaign entities.Campaign) (entities.Campaign, error) {
	created, err := p.Client.CreateCampaign(ctx, toRemoteCampaign(campaign))
	if err != nil {
		return entities.Campaign{}, mapError("create campaign", err)
	}
	return fromRemoteCampaign(created), nil
}

func (p PlatformAPI) UpdateCampaign(ctx context.Context, campaign entities.Campaign) (entities.Campaign, error) {
	updated, err := p.Client.UpdateCampaign(ctx, campaign.CampaignID, toRemoteCampaign(campaign))
	if err != nil {
		return entities.Campaign{}, mapError("update campaign", err)
	}
	return fromRemoteCampaign(updated), nil
}

func (p PlatformAPI) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	remote, err := p.Client.GetCampaign(ctx, campaignID)
	if err != nil {
		return entities.Campaign{}, mapError("get campaign", err)
	}
	return fromRemoteCampaign(remote), nil
}

func (p PlatformAPI) ListCampaigns(ctx context.Context, cursor string, limit int) (ports.CampaignPage, error) {
	page, err := p.Client.ListCampaigns(ctx, cursor, limit)
	if err != nil {
		return ports.CampaignPage{}, mapError("list campaigns", err)
	}
	items := make([]entities.Campaign, 0, len(page.Data))
	for _, remote := range page.Data {
		items = append(items, fromRemoteCampaign(remote))
	}
	return ports.CampaignPage{Items: items, NextCursor: page.NextCursor, HasMore: page.HasMore}, nil
}

func (p PlatformAPI) CreatePromoCode(ctx context.Context, promo entities.PromoCode) (entities.PromoCode, error) {
	created, err := p.Client.CreatePromoCode(ctx, commerce.PromoCode{
		CampaignID: promo.CampaignID,
		Code:       promo.Code,
		PercentOff: promo.PercentOff,
		MaxUses:    promo.MaxUses,
	})
	if err != nil {
		return entities.PromoCode{}, mapError("create promo code", err)
	}
	return entities.PromoCode{
		PromoID:    created.ID,
		CampaignID: created.CampaignID,
		Code:       created.Code,
		PercentOff: created.PercentOff,
		MaxUses:    created.MaxUses,
	}, nil
}

func (p PlatformAPI) CreatePlan(ctx context.Context, plan entities.PricingPlan) (entities.PricingPlan, error) {
	created, err := p.Client.CreatePlan(ctx, commerce.PricingPlan{
		CampaignID: plan.CampaignID,
		Name:       plan.Name,
		Price:      plan.Price,
		Interval:   plan.Interval,
	})
	if err != nil {
		return entities.PricingPlan{}, mapError("create plan", err)
	}
	return entities.PricingPlan{
		PlanID:     created.ID,
		CampaignID: created.CampaignID,
		Name:       created.Name,
		Price:      created.Price,
		Interval:   created.Interval,
	}, nil
}

func mapError(op string, err error) error {
	if errors.Is(err, commerce.ErrNotFound) {
		return domainerrors.ErrCampaignNotFound
	}
	return fmt.Errorf("%s: %w: %w", op, domainerrors.ErrPlatform, err)
}

func toRemoteCampaign(campaign entities.Campaign) commerce.Campaign {
	return commerce.Campaign{
		ID:                 campaign.CampaignID,
		Title:              campaign.Title,
		Description:        campaign.Description,
		Status:             string(campaign.Status),
		BudgetTotal:        campaign.BudgetTotal,
		CPMRate:            campaign.CPMRate,
		FlatFee:            campaign.FlatFee,
		BonusRate:          campaign.BonusRate,
		MinPayoutThreshold: campaign.MinPayoutThreshold,
		MaxPayoutCap:       campaign.MaxPayoutCap,
	}
}

func fromRemoteCampaign(remote commerce.Campaign) entities.Campaign {
	return entities.Campaign{
		CampaignID:         remote.ID,
		Title:              remote.Title,
		Description:        remote.Description,
		Status:             entities.CampaignStatus(remote.Status),
		BudgetTotal:        remote.BudgetTotal,
		CPMRate:            remote.CPMRate,
		FlatFee:            remote.FlatFee,
		BonusRate:          remote.BonusRate,
		MinPayoutThreshold: remote.MinPayoutThreshold,
		MaxPayoutCap:       remote.MaxPayoutCap,
		CreatedAt:          remote.CreatedAt,
		UpdatedAt:          remote.UpdatedAt,
	}
}
