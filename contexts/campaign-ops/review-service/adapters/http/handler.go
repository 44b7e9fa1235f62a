package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clipops/contexts/campaign-ops/review-service/application/commands"
	"clipops/contexts/campaign-ops/review-service/application/queries"
	"clipops/contexts/campaign-ops/review-service/domain/entities"
	httptransport "clipops/contexts/campaign-ops/review-service/transport/http"
	payoutdomain "clipops/contexts/finance-core/payout-engine/domain"
)

type Handler struct {
	Review  commands.ReviewSubmissionUseCase
	Queries queries.QueryUseCase
	Logger  *slog.Logger
}

func (h Handler) ApproveSubmissionHandler(
	ctx context.Context,
	submissionID string,
	req httptransport.ApproveSubmissionRequest,
) (httptransport.ApproveSubmissionResponse, error) {
	result, err := h.Review.Approve(ctx, commands.ApproveSubmissionCommand{
		SubmissionID:      submissionID,
		ViewCountOverride: req.ViewCountOverride,
		RateOverrides: payoutdomain.RateOverrides{
			CPMRate:            req.CPMRate,
			FlatFee:            req.FlatFee,
			BonusRate:          req.BonusRate,
			MinPayoutThreshold: req.MinPayout,
			MaxPayoutCap:       req.MaxPayout,
		},
	})
	if err != nil {
		return httptransport.ApproveSubmissionResponse{}, err
	}
	return httptransport.ApproveSubmissionResponse{
		Submission: mapSubmission(result.Submission),
		Breakdown:  mapBreakdown(result.Breakdown),
	}, nil
}

func (h Handler) RejectSubmissionHandler(
	ctx context.Context,
	submissionID string,
	req httptransport.RejectSubmissionRequest,
) (httptransport.RejectSubmissionResponse, error) {
	submission, err := h.Review.Reject(ctx, commands.RejectSubmissionCommand{
		SubmissionID: submissionID,
		Reason:       req.Reason,
	})
	if err != nil {
		return httptransport.RejectSubmissionResponse{}, err
	}
	return httptransport.RejectSubmissionResponse{Submission: mapSubmission(submission)}, nil
}

func (h Handler) GetSubmissionHandler(ctx context.Context, submissionID string) (httptransport.GetSubmissionResponse, error) {
	submission, err := h.Queries.GetSubmission(ctx, submissionID)
	if err != nil {
		return httptransport.GetSubmissionResponse{}, err
	}
	return httptransport.GetSubmissionResponse{Submission: mapSubmission(submission)}, nil
}

func (h Handler) ListSubmissionsHandler(
	ctx context.Context,
	query queries.ListSubmissionsQuery,
) (httptransport.ListSubmissionsResponse, error) {
	page, err := h.Queries.ListSubmissions(ctx, query)
	if err != nil {
		return httptransport.ListSubmissionsResponse{}, err
	}
	items := make([]httptransport.SubmissionDTO, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapSubmission(item))
	}
	return httptransport.ListSubmissionsResponse{
		Items:      items,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}, nil
}

func (h Handler) StatsHandler(ctx context.Context, campaignID string) (httptransport.StatsResponse, error) {
	stats, err := h.Queries.GetStats(ctx, campaignID)
	if err != nil {
		return httptransport.StatsResponse{}, err
	}
	return httptransport.StatsResponse{
		Total:        stats.Total,
		Pending:      stats.Pending,
		Flagged:      stats.Flagged,
		Approved:     stats.Approved,
		Rejected:     stats.Rejected,
		Paid:         stats.Paid,
		TotalViews:   stats.TotalViews,
		AverageViews: stats.AverageViews,
		ApprovalRate: stats.ApprovalRate,
	}, nil
}

func mapSubmission(item entities.Submission) httptransport.SubmissionDTO {
	dto := httptransport.SubmissionDTO{
		SubmissionID:     item.SubmissionID,
		CampaignID:       item.CampaignID,
		SubmitterID:      item.SubmitterID,
		ContentURL:       item.ContentURL,
		Platform:         string(item.Platform),
		ViewCount:        item.ViewCount,
		Status:           string(item.Status),
		SubmittedAt:      item.SubmittedAt.UTC().Format(time.RFC3339),
		StatusReason:     item.StatusReason,
		CalculatedPayout: item.CalculatedPayout,
		ActualPayout:     item.ActualPayout,
		TransferID:       item.TransferID,
	}
	if item.ReviewedAt != nil {
		dto.ReviewedAt = item.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func mapBreakdown(breakdown payoutdomain.PayoutBreakdown) httptransport.BreakdownDTO {
	return httptransport.BreakdownDTO{
		ViewCount:    breakdown.ViewCount,
		CPMPayout:    breakdown.CPMPayout,
		FlatFee:      breakdown.FlatFee,
		BonusPayout:  breakdown.BonusPayout,
		GrossTotal:   breakdown.GrossTotal,
		CappedTotal:  breakdown.CappedTotal,
		MeetsMinimum: breakdown.MeetsMinimum,
		FinalPayout:  breakdown.FinalPayout,
		WasCapped:    breakdown.WasCapped,
	}
}
