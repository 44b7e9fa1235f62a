package http

type CreateCampaignRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	BudgetTotal        float64  `json:"budget_total"`
	CPMRate            *float64 `json:"cpm_rate,omitempty"`
	FlatFee            *float64 `json:"flat_fee,omitempty"`
	BonusRate          *float64 `json:"bonus_rate,omitempty"`
	MinPayoutThreshold *float64 `json:"min_payout_threshold,omitempty"`
	MaxPayoutCap       *float64 `json:"max_payout_cap,omitempty"`
}

type UpdateCampaignRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Status             string   `json:"status"`
	BudgetTotal        float64  `json:"budget_total"`
	CPMRate            *float64 `json:"cpm_rate,omitempty"`
	FlatFee            *float64 `json:"flat_fee,omitempty"`
	BonusRate          *float64 `json:"bonus_rate,omitempty"`
	MinPayoutThreshold *float64 `json:"min_payout_threshold,omitempty"`
	MaxPayoutCap       *float64 `json:"max_payout_cap,omitempty"`
}

type CampaignDTO struct {
	CampaignID         string   `json:"campaign_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Status             string   `json:"status"`
	BudgetTotal        float64  `json:"budget_total"`
	CPMRate            *float64 `json:"cpm_rate,omitempty"`
	FlatFee            *float64 `json:"flat_fee,omitempty"`
	BonusRate          *float64 `json:"bonus_rate,omitempty"`
	MinPayoutThreshold *float64 `json:"min_payout_threshold,omitempty"`
	MaxPayoutCap       *float64 `json:"max_payout_cap,omitempty"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

type CampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ListCampaignsResponse struct {
	Items      []CampaignDTO `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
	HasMore    bool          `json:"has_more"`
}

type CreatePromoCodeRequest struct {
	CampaignID string  `json:"campaign_id"`
	Code       string  `json:"code"`
	PercentOff float64 `json:"percent_off"`
	MaxUses    int     `json:"max_uses"`
}

type PromoCodeResponse struct {
	PromoID    string  `json:"promo_id"`
	CampaignID string  `json:"campaign_id"`
	Code       string  `json:"code"`
	PercentOff float64 `json:"percent_off"`
	MaxUses    int     `json:"max_uses"`
}

type CreatePlanRequest struct {
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Interval   string  `json:"interval"`
}

type PlanResponse struct {
	PlanID     string  `json:"plan_id"`
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Interval   string  `json:"interval"`
}
