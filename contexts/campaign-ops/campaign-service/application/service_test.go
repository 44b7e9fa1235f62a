package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"clipops/contexts/campaign-ops/campaign-service/adapters/memory"
	"clipops/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "clipops/contexts/campaign-ops/campaign-service/domain/errors"
)

func newService() (Service, *memory.PlatformAPI) {
	api := memory.NewPlatformAPI()
	return Service{API: api}, api
}

func validCampaign() entities.Campaign {
	return entities.Campaign{
		Title:       "Summer Clip Challenge",
		Description: "Clip our launch stream, best clips get paid.",
		BudgetTotal: 5000,
	}
}

func TestCreateCampaignAssignsIDAndDefaults(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateCampaign(context.Background(), validCampaign())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.CampaignID == "" {
		t.Fatal("expected a campaign id")
	}
	if created.Status != entities.CampaignStatusDraft {
		t.Fatalf("expected draft status, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set, got %+v", created)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	service, _ := newService()
	negative := -1.0

	cases := []struct {
		name     string
		campaign entities.Campaign
	}{
		{"blank title", entities.Campaign{Description: "d"}},
		{"short title", entities.Campaign{Title: "ab", Description: "d"}},
		{"blank description", entities.Campaign{Title: "Summer Clip Challenge"}},
		{"negative budget", entities.Campaign{Title: "Summer Clip Challenge", Description: "d", BudgetTotal: -5}},
		{"negative cpm override", func() entities.Campaign {
			c := validCampaign()
			c.CPMRate = &negative
			return c
		}()},
		{"zero payout cap", func() entities.Campaign {
			c := validCampaign()
			zero := 0.0
			c.MaxPayoutCap = &zero
			return c
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateCampaign(context.Background(), tc.campaign)
			if !errors.Is(err, domainerrors.ErrInvalidCampaignData) {
				t.Fatalf("expected ErrInvalidCampaignData, got %v", err)
			}
		})
	}
}

func TestUpdateCampaignRequiresID(t *testing.T) {
	service, _ := newService()

	_, err := service.UpdateCampaign(context.Background(), validCampaign())
	if !errors.Is(err, domainerrors.ErrInvalidCampaignData) {
		t.Fatalf("expected ErrInvalidCampaignData for missing id, got %v", err)
	}
}

func TestUpdateCampaignPreservesCreatedAt(t *testing.T) {
	service, api := newService()
	created, err := service.CreateCampaign(context.Background(), validCampaign())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	api.NowFunc = func() time.Time {
		return created.CreatedAt.Add(time.Hour)
	}

	updated := created
	updated.Title = "Summer Clip Challenge v2"
	updated.Status = entities.CampaignStatusActive
	result, err := service.UpdateCampaign(context.Background(), updated)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !result.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt changed on update: %v vs %v", result.CreatedAt, created.CreatedAt)
	}
	if !result.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("UpdatedAt not advanced: %v", result.UpdatedAt)
	}
	if result.Status != entities.CampaignStatusActive {
		t.Fatalf("status not updated, got %q", result.Status)
	}
}

func TestGetCampaignNotFound(t *testing.T) {
	service, _ := newService()

	_, err := service.GetCampaign(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestListCampaignsPaginates(t *testing.T) {
	service, api := newService()
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		offset := time.Duration(i) * time.Minute
		api.NowFunc = func() time.Time { return base.Add(offset) }
		campaign := validCampaign()
		campaign.CampaignID = "camp_" + string(rune('a'+i))
		if _, err := service.CreateCampaign(context.Background(), campaign); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	first, err := service.ListCampaigns(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(first.Items) != 2 || !first.HasMore {
		t.Fatalf("unexpected first page %+v", first)
	}
	if first.Items[0].CampaignID != "camp_e" {
		t.Fatalf("expected newest campaign first, got %q", first.Items[0].CampaignID)
	}

	second, err := service.ListCampaigns(context.Background(), first.NextCursor, 2)
	if err != nil {
		t.Fatalf("second page failed: %v", err)
	}
	if len(second.Items) != 2 || second.Items[0].CampaignID != "camp_c" {
		t.Fatalf("unexpected second page %+v", second)
	}
}

func TestCreatePromoCodeValidation(t *testing.T) {
	service, _ := newService()
	created, err := service.CreateCampaign(context.Background(), validCampaign())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = service.CreatePromoCode(context.Background(), entities.PromoCode{
		CampaignID: created.CampaignID,
		Code:       "CLIP50",
		PercentOff: 150,
	})
	if !errors.Is(err, domainerrors.ErrInvalidPromoCode) {
		t.Fatalf("expected ErrInvalidPromoCode for >100%%, got %v", err)
	}

	promo, err := service.CreatePromoCode(context.Background(), entities.PromoCode{
		CampaignID: created.CampaignID,
		Code:       "CLIP50",
		PercentOff: 50,
		MaxUses:    100,
	})
	if err != nil {
		t.Fatalf("promo create failed: %v", err)
	}
	if promo.PromoID == "" {
		t.Fatal("expected a promo id")
	}
}

func TestCreatePromoCodeUnknownCampaign(t *testing.T) {
	service, _ := newService()

	_, err := service.CreatePromoCode(context.Background(), entities.PromoCode{
		CampaignID: "missing",
		Code:       "CLIP50",
		PercentOff: 50,
	})
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestCreatePlanValidation(t *testing.T) {
	service, _ := newService()
	created, err := service.CreateCampaign(context.Background(), validCampaign())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = service.CreatePlan(context.Background(), entities.PricingPlan{
		CampaignID: created.CampaignID,
		Name:       "Sponsor Tier",
		Price:      25,
		Interval:   "weekly",
	})
	if !errors.Is(err, domainerrors.ErrInvalidPricingPlan) {
		t.Fatalf("expected ErrInvalidPricingPlan for bad interval, got %v", err)
	}

	plan, err := service.CreatePlan(context.Background(), entities.PricingPlan{
		CampaignID: created.CampaignID,
		Name:       "Sponsor Tier",
		Price:      25,
		Interval:   "monthly",
	})
	if err != nil {
		t.Fatalf("plan create failed: %v", err)
	}
	if plan.PlanID == "" {
		t.Fatal("expected a plan id")
	}
}
