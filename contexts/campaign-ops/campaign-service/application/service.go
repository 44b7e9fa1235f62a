package application

import (
	"context"
	"log/slog"
	"strings"

	"clipops/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "clipops/contexts/campaign-ops/campaign-service/domain/errors"
	"clipops/contexts/campaign-ops/campaign-service/ports"
)

// Service validates campaign inputs and passes them through to the platform.
// There is no local campaign state.
type Service struct {
	API    ports.PlatformAPI
	Logger *slog.Logger
}

func (s Service) CreateCampaign(ctx context.Context, campaign entities.Campaign) (entities.Campaign, error) {
	if !campaign.ValidateBasics() {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignData
	}
	created, err := s.API.CreateCampaign(ctx, campaign)
	if err != nil {
		return entities.Campaign{}, err
	}
	s.logger().Info("campaign created",
		"event", "campaign_created",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", created.CampaignID,
	)
	return created, nil
}

func (s Service) UpdateCampaign(ctx context.Context, campaign entities.Campaign) (entities.Campaign, error) {
	if strings.TrimSpace(campaign.CampaignID) == "" || !campaign.ValidateBasics() {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignData
	}
	return s.API.UpdateCampaign(ctx, campaign)
}

func (s Service) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	return s.API.GetCampaign(ctx, strings.TrimSpace(campaignID))
}

func (s Service) ListCampaigns(ctx context.Context, cursor string, limit int) (ports.CampaignPage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.API.ListCampaigns(ctx, strings.TrimSpace(cursor), limit)
}

func (s Service) CreatePromoCode(ctx context.Context, promo entities.PromoCode) (entities.PromoCode, error) {
	if !promo.ValidateCreate() {
		return entities.PromoCode{}, domainerrors.ErrInvalidPromoCode
	}
	created, err := s.API.CreatePromoCode(ctx, promo)
	if err != nil {
		return entities.PromoCode{}, err
	}
	s.logger().Info("promo code created",
		"event", "promo_code_created",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", created.CampaignID,
		"code", created.Code,
	)
	return created, nil
}

func (s Service) CreatePlan(ctx context.Context, plan entities.PricingPlan) (entities.PricingPlan, error) {
	if !plan.ValidateCreate() {
		return entities.PricingPlan{}, domainerrors.ErrInvalidPricingPlan
	}
	return s.API.CreatePlan(ctx, plan)
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
