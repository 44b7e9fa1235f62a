package queries

import (
	"context"
	"log/slog"
	"strings"

	"clipops/contexts/campaign-ops/review-service/application"
	"clipops/contexts/campaign-ops/review-service/domain/entities"
	"clipops/contexts/campaign-ops/review-service/ports"
)

// statsPageSize bounds each repository round trip while folding stats.
const statsPageSize = 200

type ListSubmissionsQuery struct {
	CampaignID  string
	SubmitterID string
	Status      string
	Platform    string
	Cursor      string
	Limit       int
}

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc QueryUseCase) GetSubmission(ctx context.Context, submissionID string) (entities.Submission, error) {
	return uc.Repository.GetSubmission(ctx, strings.TrimSpace(submissionID))
}

// ListSubmissions delegates filtering to the repository except for platform,
// which the remote API cannot filter; that is applied to the returned page.
func (uc QueryUseCase) ListSubmissions(ctx context.Context, query ListSubmissionsQuery) (ports.SubmissionPage, error) {
	filter := ports.SubmissionFilter{
		CampaignID:  strings.TrimSpace(query.CampaignID),
		SubmitterID: strings.TrimSpace(query.SubmitterID),
		Cursor:      strings.TrimSpace(query.Cursor),
		Limit:       query.Limit,
	}
	if status := strings.TrimSpace(query.Status); status != "" {
		filter.Status = entities.SubmissionStatus(status)
	}

	page, err := uc.Repository.ListSubmissions(ctx, filter)
	if err != nil {
		return ports.SubmissionPage{}, err
	}

	if platform := strings.TrimSpace(query.Platform); platform != "" {
		wanted := entities.NormalizePlatform(platform)
		filtered := make([]entities.Submission, 0, len(page.Items))
		for _, item := range page.Items {
			if item.Platform == wanted {
				filtered = append(filtered, item)
			}
		}
		page.Items = filtered
	}
	return page, nil
}

// GetStats folds every page of the (optionally campaign-scoped) collection
// into aggregate counts. View totals and averages cover approved submissions
// only; an empty collection yields all zeroes.
func (uc QueryUseCase) GetStats(ctx context.Context, campaignID string) (entities.SubmissionStats, error) {
	stats := entities.SubmissionStats{}
	cursor := ""
	for {
		page, err := uc.Repository.ListSubmissions(ctx, ports.SubmissionFilter{
			CampaignID: strings.TrimSpace(campaignID),
			Cursor:     cursor,
			Limit:      statsPageSize,
		})
		if err != nil {
			return entities.SubmissionStats{}, err
		}
		for _, item := range page.Items {
			stats.Total++
			switch item.Status {
			case entities.SubmissionStatusPending:
				stats.Pending++
			case entities.SubmissionStatusFlagged:
				stats.Flagged++
			case entities.SubmissionStatusApproved:
				stats.Approved++
				stats.TotalViews += item.ViewCount
			case entities.SubmissionStatusRejected:
				stats.Rejected++
			case entities.SubmissionStatusPaid:
				stats.Paid++
			}
		}
		if !page.HasMore || page.NextCursor == "" || page.NextCursor == cursor {
			break
		}
		cursor = page.NextCursor
	}

	if stats.Approved > 0 {
		stats.AverageViews = float64(stats.TotalViews) / float64(stats.Approved)
	}
	if stats.Total > 0 {
		stats.ApprovalRate = float64(stats.Approved) / float64(stats.Total)
	}

	application.ResolveLogger(uc.Logger).Debug("submission stats computed",
		"event", "submission_stats_computed",
		"module", "campaign-ops/review-service",
		"layer", "application",
		"campaign_id", campaignID,
		"total", stats.Total,
		"approved", stats.Approved,
	)
	return stats, nil
}
