package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clipops/contexts/campaign-ops/campaign-service/application"
	"clipops/contexts/campaign-ops/campaign-service/domain/entities"
	httptransport "clipops/contexts/campaign-ops/campaign-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateCampaignHandler(ctx context.Context, req httptransport.CreateCampaignRequest) (httptransport.CampaignResponse, error) {
	created, err := h.Service.CreateCampaign(ctx, entities.Campaign{
		Title:              req.Title,
		Description:        req.Description,
		BudgetTotal:        req.BudgetTotal,
		CPMRate:            req.CPMRate,
		FlatFee:            req.FlatFee,
		BonusRate:          req.BonusRate,
		MinPayoutThreshold: req.MinPayoutThreshold,
		MaxPayoutCap:       req.MaxPayoutCap,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(created)}, nil
}

func (h Handler) UpdateCampaignHandler(
	ctx context.Context,
	campaignID string,
	req httptransport.UpdateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	updated, err := h.Service.UpdateCampaign(ctx, entities.Campaign{
		CampaignID:         campaignID,
		Title:              req.Title,
		Description:        req.Description,
		Status:             entities.CampaignStatus(req.Status),
		BudgetTotal:        req.BudgetTotal,
		CPMRate:            req.CPMRate,
		FlatFee:            req.FlatFee,
		BonusRate:          req.BonusRate,
		MinPayoutThreshold: req.MinPayoutThreshold,
		MaxPayoutCap:       req.MaxPayoutCap,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(updated)}, nil
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.CampaignResponse, error) {
	campaign, err := h.Service.GetCampaign(ctx, campaignID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) ListCampaignsHandler(ctx context.Context, cursor string, limit int) (httptransport.ListCampaignsResponse, error) {
	page, err := h.Service.ListCampaigns(ctx, cursor, limit)
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	items := make([]httptransport.CampaignDTO, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapCampaign(item))
	}
	return httptransport.ListCampaignsResponse{
		Items:      items,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}, nil
}

func (h Handler) CreatePromoCodeHandler(ctx context.Context, req httptransport.CreatePromoCodeRequest) (httptransport.PromoCodeResponse, error) {
	created, err := h.Service.CreatePromoCode(ctx, entities.PromoCode{
		CampaignID: req.CampaignID,
		Code:       req.Code,
		PercentOff: req.PercentOff,
		MaxUses:    req.MaxUses,
	})
	if err != nil {
		return httptransport.PromoCodeResponse{}, err
	}
	return httptransport.PromoCodeResponse{
		PromoID:    created.PromoID,
		CampaignID: created.CampaignID,
		Code:       created.Code,
		PercentOff: created.PercentOff,
		MaxUses:    created.MaxUses,
	}, nil
}

func (h Handler) CreatePlanHandler(ctx context.Context, req httptransport.CreatePlanRequest) (httptransport.PlanResponse, error) {
	created, err := h.Service.CreatePlan(ctx, entities.PricingPlan{
		CampaignID: req.CampaignID,
		Name:       req.Name,
		Price:      req.Price,
		Interval:   req.Interval,
	})
	if err != nil {
		return httptransport.PlanResponse{}, err
	}
	return httptransport.PlanResponse{
		PlanID:     created.PlanID,
		CampaignID: created.CampaignID,
		Name:       created.Name,
		Price:      created.Price,
		Interval:   created.Interval,
	}, nil
}

func mapCampaign(campaign entities.Campaign) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		CampaignID:         campaign.CampaignID,
		Title:              campaign.Title,
		Description:        campaign.Description,
		Status:             string(campaign.Status),
		BudgetTotal:        campaign.BudgetTotal,
		CPMRate:            campaign.CPMRate,
		FlatFee:            campaign.FlatFee,
		BonusRate:          campaign.BonusRate,
		MinPayoutThreshold: campaign.MinPayoutThreshold,
		MaxPayoutCap:       campaign.MaxPayoutCap,
		CreatedAt:          campaign.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          campaign.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
