package application

import (
	"log/slog"

	"clipops/contexts/finance-core/payout-engine/domain"
	domainerrors "clipops/contexts/finance-core/payout-engine/domain/errors"
)

// Service exposes payout quoting over the pure calculator. Review and sweep
// flows call the domain functions directly; this service backs the quote
// endpoint and the CLI preview.
type Service struct {
	Defaults domain.CampaignRateConfig
	Logger   *slog.Logger
}

type QuoteInput struct {
	CampaignID string
	ViewCount  int64
	Overrides  domain.RateOverrides
}

type Quote struct {
	Config           domain.CampaignRateConfig `json:"config"`
	Breakdown        domain.PayoutBreakdown    `json:"breakdown"`
	MinimumViews     int64                     `json:"minimum_views"`
	ViewsUnreachable bool                      `json:"views_unreachable"`
}

func (s Service) QuotePayout(input QuoteInput) (Quote, error) {
	if input.ViewCount < 0 {
		return Quote{}, domainerrors.ErrNegativeViewCount
	}
	config := domain.ResolveRateConfig(s.Defaults, input.Overrides)
	if !config.Valid() {
		return Quote{}, domainerrors.ErrInvalidRateConfig
	}

	breakdown := domain.CalculatePayout(input.ViewCount, config)
	minimumViews := domain.MinimumViewsForPayout(config)

	resolveLogger(s.Logger).Debug("payout quoted",
		"event", "payout_quoted",
		"module", "finance-core/payout-engine",
		"layer", "application",
		"campaign_id", input.CampaignID,
		"view_count", input.ViewCount,
		"final_payout", breakdown.FinalPayout,
	)
	return Quote{
		Config:           config,
		Breakdown:        breakdown,
		MinimumViews:     minimumViews,
		ViewsUnreachable: minimumViews == domain.UnreachableViews,
	}, nil
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
