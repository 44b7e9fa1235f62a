package entities

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign is the platform-owned campaign record. Pricing fields are optional
// overrides over the process-wide rate defaults.
type Campaign struct {
	CampaignID         string
	Title              string
	Description        string
	Status             CampaignStatus
	BudgetTotal        float64
	CPMRate            *float64
	FlatFee            *float64
	BonusRate          *float64
	MinPayoutThreshold *float64
	MaxPayoutCap       *float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (c Campaign) ValidateBasics() bool {
	title := strings.TrimSpace(c.Title)
	description := strings.TrimSpace(c.Description)

	return title != "" &&
		len(title) >= 3 &&
		len(title) <= 100 &&
		description != "" &&
		len(description) <= 2000 &&
		c.BudgetTotal >= 0 &&
		validOptionalRate(c.CPMRate) &&
		validOptionalRate(c.FlatFee) &&
		validOptionalRate(c.BonusRate) &&
		validOptionalRate(c.MinPayoutThreshold) &&
		validOptionalCap(c.MaxPayoutCap)
}

func validOptionalRate(value *float64) bool {
	return value == nil || *value >= 0
}

func validOptionalCap(value *float64) bool {
	return value == nil || *value > 0
}

type PromoCode struct {
	PromoID    string
	CampaignID string
	Code       string
	PercentOff float64
	MaxUses    int
}

func (p PromoCode) ValidateCreate() bool {
	return strings.TrimSpace(p.CampaignID) != "" &&
		strings.TrimSpace(p.Code) != "" &&
		p.PercentOff > 0 &&
		p.PercentOff <= 100 &&
		p.MaxUses >= 0
}

type PricingPlan struct {
	PlanID     string
	CampaignID string
	Name       string
	Price      float64
	Interval   string
}

func (p PricingPlan) ValidateCreate() bool {
	switch strings.TrimSpace(p.Interval) {
	case "one_time", "monthly", "yearly":
	default:
		return false
	}
	return strings.TrimSpace(p.CampaignID) != "" &&
		strings.TrimSpace(p.Name) != "" &&
		p.Price >= 0
}
