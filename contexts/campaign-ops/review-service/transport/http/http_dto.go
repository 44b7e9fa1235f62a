package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ApproveSubmissionRequest struct {
	ViewCountOverride *int64   `json:"view_count_override,omitempty"`
	CPMRate           *float64 `json:"cpm_rate,omitempty"`
	FlatFee           *float64 `json:"flat_fee,omitempty"`
	BonusRate         *float64 `json:"bonus_rate,omitempty"`
	MinPayout         *float64 `json:"min_payout_threshold,omitempty"`
	MaxPayout         *float64 `json:"max_payout_cap,omitempty"`
}

type RejectSubmissionRequest struct {
	Reason string `json:"reason"`
}

type SubmissionDTO struct {
	SubmissionID     string  `json:"submission_id"`
	CampaignID       string  `json:"campaign_id"`
	SubmitterID      string  `json:"submitter_id"`
	ContentURL       string  `json:"content_url"`
	Platform         string  `json:"platform"`
	ViewCount        int64   `json:"view_count"`
	Status           string  `json:"status"`
	SubmittedAt      string  `json:"submitted_at"`
	ReviewedAt       string  `json:"reviewed_at,omitempty"`
	StatusReason     string  `json:"status_reason,omitempty"`
	CalculatedPayout float64 `json:"calculated_payout"`
	ActualPayout     float64 `json:"actual_payout"`
	TransferID       string  `json:"transfer_id,omitempty"`
}

type BreakdownDTO struct {
	ViewCount    int64   `json:"view_count"`
	CPMPayout    float64 `json:"cpm_payout"`
	FlatFee      float64 `json:"flat_fee"`
	BonusPayout  float64 `json:"bonus_payout"`
	GrossTotal   float64 `json:"gross_total"`
	CappedTotal  float64 `json:"capped_total"`
	MeetsMinimum bool    `json:"meets_minimum"`
	FinalPayout  float64 `json:"final_payout"`
	WasCapped    bool    `json:"was_capped"`
}

type ApproveSubmissionResponse struct {
	Submission SubmissionDTO `json:"submission"`
	Breakdown  BreakdownDTO  `json:"breakdown"`
}

type RejectSubmissionResponse struct {
	Submission SubmissionDTO `json:"submission"`
}

type GetSubmissionResponse struct {
	Submission SubmissionDTO `json:"submission"`
}

type ListSubmissionsResponse struct {
	Items      []SubmissionDTO `json:"items"`
	NextCursor string          `json:"next_cursor,omitempty"`
	HasMore    bool            `json:"has_more"`
}

type StatsResponse struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Flagged      int     `json:"flagged"`
	Approved     int     `json:"approved"`
	Rejected     int     `json:"rejected"`
	Paid         int     `json:"paid"`
	TotalViews   int64   `json:"total_views"`
	AverageViews float64 `json:"average_views"`
	ApprovalRate float64 `json:"approval_rate"`
}

type SweepErrorDTO struct {
	SubmissionID string `json:"submission_id"`
	Message      string `json:"message"`
}

type SweepResponse struct {
	SweepID     string          `json:"sweep_id"`
	CampaignID  string          `json:"campaign_id"`
	Approved    int             `json:"approved"`
	Skipped     int             `json:"skipped"`
	Errors      []SweepErrorDTO `json:"errors,omitempty"`
	TotalPayout float64         `json:"total_payout"`
}
