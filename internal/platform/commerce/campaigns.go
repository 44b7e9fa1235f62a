package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Campaign is the platform-side campaign record, including the pricing fields
// layered over local defaults when submissions are reviewed.
type Campaign struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Status             string    `json:"status"`
	BudgetTotal        float64   `json:"budget_total"`
	CPMRate            *float64  `json:"cpm_rate,omitempty"`
	FlatFee            *float64  `json:"flat_fee,omitempty"`
	BonusRate          *float64  `json:"bonus_rate,omitempty"`
	MinPayoutThreshold *float64  `json:"min_payout_threshold,omitempty"`
	MaxPayoutCap       *float64  `json:"max_payout_cap,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type CampaignPage struct {
	Data       []Campaign `json:"data"`
	NextCursor string     `json:"next_cursor"`
	HasMore    bool       `json:"has_more"`
}

type PromoCode struct {
	ID         string  `json:"id"`
	CampaignID string  `json:"campaign_id"`
	Code       string  `json:"code"`
	PercentOff float64 `json:"percent_off"`
	MaxUses    int     `json:"max_uses"`
}

type PricingPlan struct {
	ID         string  `json:"id"`
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Interval   string  `json:"interval"`
}

func (c *Client) CreateCampaign(ctx context.Context, campaign Campaign) (Campaign, error) {
	var created Campaign
	if err := c.do(ctx, http.MethodPost, "/v1/campaigns", nil, campaign, &created); err != nil {
		return Campaign{}, err
	}
	return created, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, campaignID string, campaign Campaign) (Campaign, error) {
	var updated Campaign
	if err := c.do(ctx, http.MethodPatch, "/v1/campaigns/"+url.PathEscape(campaignID), nil, campaign, &updated); err != nil {
		return Campaign{}, err
	}
	return updated, nil
}

func (c *Client) GetCampaign(ctx context.Context, campaignID string) (Campaign, error) {
	var campaign Campaign
	if err := c.do(ctx, http.MethodGet, "/v1/campaigns/"+url.PathEscape(campaignID), nil, nil, &campaign); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

func (c *Client) ListCampaigns(ctx context.Context, cursor string, limit int) (CampaignPage, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var page CampaignPage
	if err := c.do(ctx, http.MethodGet, "/v1/campaigns", query, nil, &page); err != nil {
		return CampaignPage{}, err
	}
	return page, nil
}

func (c *Client) CreatePromoCode(ctx context.Context, promo PromoCode) (PromoCode, error) {
	var created PromoCode
	if err := c.do(ctx, http.MethodPost, "/v1/promo-codes", nil, promo, &created); err != nil {
		return PromoCode{}, err
	}
	return created, nil
}

func (c *Client) CreatePlan(ctx context.Context, plan PricingPlan) (PricingPlan, error) {
	var created PricingPlan
	if err := c.do(ctx, http.MethodPost, "/v1/plans", nil, plan, &created); err != nil {
		return PricingPlan{}, err
	}
	return created, nil
}
