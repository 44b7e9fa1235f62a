package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"clipops/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "clipops/contexts/campaign-ops/campaign-service/domain/errors"
	"clipops/contexts/campaign-ops/campaign-service/ports"
)

const defaultPageSize = 50

// PlatformAPI is an in-memory stand-in for the remote platform, used in tests
// and when no platform credentials are configured.
type PlatformAPI struct {
	mu        sync.RWMutex
	campaigns map[string]entities.Campaign
	promos    map[string]entities.PromoCode
	plans     map[string]entities.PricingPlan

	NowFunc func() time.Time
}

func NewPlatformAPI() *PlatformAPI {
	return &PlatformAPI{
		campaigns: make(map[string]entities.Campaign),
		promos:    make(map[string]entities.PromoCode),
		plans:     make(map[string]entities.PricingPlan),
	}
}

func (p *PlatformAPI) CreateCampaign(_ context.Context, campaign entities.Campaign) (entities.Campaign, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if campaign.CampaignID == "" {
		campaign.CampaignID = uuid.NewString()
	}
	if campaign.Status == "" {
		campaign.Status = entities.CampaignStatusDraft
	}
	campaign.CreatedAt = p.now()
	campaign.UpdatedAt = campaign.CreatedAt
	p.campaigns[campaign.CampaignID] = campaign
	return campaign, nil
}

func (p *PlatformAPI) UpdateCampaign(_ context.Context, campaign entities.Campaign) (entities.Campaign, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	existing, ok := p.campaigns[campaign.CampaignID]
	if !ok {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	campaign.CreatedAt = existing.CreatedAt
	campaign.UpdatedAt = p.now()
	p.campaigns[campaign.CampaignID] = campaign
	return campaign, nil
}

func (p *PlatformAPI) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	campaign, ok := p.campaigns[campaignID]
	if !ok {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return campaign, nil
}

func (p *PlatformAPI) ListCampaigns(_ context.Context, cursor string, limit int) (ports.CampaignPage, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	all := make([]entities.Campaign, 0, len(p.campaigns))
	for _, campaign := range p.campaigns {
		all = append(all, campaign)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CampaignID < all[j].CampaignID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	offset := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err == nil && parsed > 0 {
			offset = parsed
		}
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset >= len(all) {
		return ports.CampaignPage{Items: []entities.Campaign{}}, nil
	}

	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	page := ports.CampaignPage{Items: all[offset:end]}
	if end < len(all) {
		page.HasMore = true
		page.NextCursor = strconv.Itoa(end)
	}
	return page, nil
}

func (p *PlatformAPI) CreatePromoCode(_ context.Context, promo entities.PromoCode) (entities.PromoCode, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.campaigns[promo.CampaignID]; !ok {
		return entities.PromoCode{}, domainerrors.ErrCampaignNotFound
	}
	promo.PromoID = uuid.NewString()
	p.promos[promo.PromoID] = promo
	return promo, nil
}

func (p *PlatformAPI) CreatePlan(_ context.Context, plan entities.PricingPlan) (entities.PricingPlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.campaigns[plan.CampaignID]; !ok {
		return entities.PricingPlan{}, domainerrors.ErrCampaignNotFound
	}
	plan.PlanID = uuid.NewString()
	p.plans[plan.PlanID] = plan
	return plan, nil
}

func (p *PlatformAPI) now() time.Time {
	if p.NowFunc != nil {
		return p.NowFunc()
	}
	return time.Now().UTC()
}
