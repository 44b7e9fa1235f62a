package http

type QuoteRequest struct {
	CampaignID         string   `json:"campaign_id"`
	ViewCount          int64    `json:"view_count"`
	CPMRate            *float64 `json:"cpm_rate,omitempty"`
	FlatFee            *float64 `json:"flat_fee,omitempty"`
	BonusRate          *float64 `json:"bonus_rate,omitempty"`
	MinPayoutThreshold *float64 `json:"min_payout_threshold,omitempty"`
	MaxPayoutCap       *float64 `json:"max_payout_cap,omitempty"`
}

type QuoteResponse struct {
	ViewCount        int64   `json:"view_count"`
	CPMPayout        float64 `json:"cpm_payout"`
	FlatFee          float64 `json:"flat_fee"`
	BonusPayout      float64 `json:"bonus_payout"`
	GrossTotal       float64 `json:"gross_total"`
	CappedTotal      float64 `json:"capped_total"`
	MeetsMinimum     bool    `json:"meets_minimum"`
	FinalPayout      float64 `json:"final_payout"`
	WasCapped        bool    `json:"was_capped"`
	MinimumViews     int64   `json:"minimum_views"`
	ViewsUnreachable bool    `json:"views_unreachable"`
}
