package httpadapter

import (
	"log/slog"

	"clipops/contexts/finance-core/payout-engine/application"
	"clipops/contexts/finance-core/payout-engine/domain"
	httptransport "clipops/contexts/finance-core/payout-engine/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) QuoteHandler(req httptransport.QuoteRequest) (httptransport.QuoteResponse, error) {
	quote, err := h.Service.QuotePayout(application.QuoteInput{
		CampaignID: req.CampaignID,
		ViewCount:  req.ViewCount,
		Overrides: domain.RateOverrides{
			CPMRate:            req.CPMRate,
			FlatFee:            req.FlatFee,
			BonusRate:          req.BonusRate,
			MinPayoutThreshold: req.MinPayoutThreshold,
			MaxPayoutCap:       req.MaxPayoutCap,
		},
	})
	if err != nil {
		return httptransport.QuoteResponse{}, err
	}
	return httptransport.QuoteResponse{
		ViewCount:        quote.Breakdown.ViewCount,
		CPMPayout:        quote.Breakdown.CPMPayout,
		FlatFee:          quote.Breakdown.FlatFee,
		BonusPayout:      quote.Breakdown.BonusPayout,
		GrossTotal:       quote.Breakdown.GrossTotal,
		CappedTotal:      quote.Breakdown.CappedTotal,
		MeetsMinimum:     quote.Breakdown.MeetsMinimum,
		FinalPayout:      quote.Breakdown.FinalPayout,
		WasCapped:        quote.Breakdown.WasCapped,
		MinimumViews:     quote.MinimumViews,
		ViewsUnreachable: quote.ViewsUnreachable,
	}, nil
}
