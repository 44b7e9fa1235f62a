package workers

import (
	"context"
	"log/slog"
	"time"

	"clipops/contexts/campaign-ops/review-service/application"
	"clipops/contexts/campaign-ops/review-service/application/commands"
	"clipops/contexts/campaign-ops/review-service/domain/entities"
	"clipops/contexts/campaign-ops/review-service/ports"
	payoutdomain "clipops/contexts/finance-core/payout-engine/domain"
	"clipops/internal/shared/events"
)

const defaultBatchLimit = 100

// SweepPolicy is the eligibility rule one sweep applies to pending
// submissions of a campaign.
type SweepPolicy struct {
	CampaignID        string
	AgeThresholdHours float64
	MinViewCount      int64
	BatchLimit        int
	RateOverrides     payoutdomain.RateOverrides
}

type SweepError struct {
	SubmissionID string `json:"submission_id"`
	Message      string `json:"message"`
}

// SweepResult aggregates one sweep. Skipped entries simply failed the age or
// view rule; the sweep never rejects.
type SweepResult struct {
	SweepID     string       `json:"sweep_id"`
	CampaignID  string       `json:"campaign_id"`
	StartedAt   time.Time    `json:"started_at"`
	Approved    int          `json:"approved"`
	Skipped     int          `json:"skipped"`
	Errors      []SweepError `json:"errors,omitempty"`
	TotalPayout float64      `json:"total_payout"`
}

// AutoApproveJob scans pending submissions and approves the ones old enough
// and viewed enough under the policy. One failing entry never aborts the rest.
type AutoApproveJob struct {
	Review     commands.ReviewSubmissionUseCase
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Publisher  ports.EventPublisher
	Policy     SweepPolicy
	Logger     *slog.Logger
}

func (j AutoApproveJob) RunOnce(ctx context.Context) (SweepResult, error) {
	logger := application.ResolveLogger(j.Logger)
	now := j.now()
	limit := j.Policy.BatchLimit
	if limit <= 0 {
		limit = defaultBatchLimit
	}

	result := SweepResult{
		CampaignID: j.Policy.CampaignID,
		StartedAt:  now,
	}
	if j.IDGen != nil {
		if id, err := j.IDGen.NewID(ctx); err == nil {
			result.SweepID = id
		}
	}

	page, err := j.Repository.ListSubmissions(ctx, ports.SubmissionFilter{
		CampaignID: j.Policy.CampaignID,
		Status:     entities.SubmissionStatusPending,
		Limit:      limit,
	})
	if err != nil {
		logger.Error("auto-approve sweep list failed",
			"event", "sweep_list_failed",
			"module", "campaign-ops/review-service",
			"layer", "worker",
			"campaign_id", j.Policy.CampaignID,
			"error", err.Error(),
		)
		return result, err
	}

	// Entries are processed in the repository's natural order for the page.
	for _, submission := range page.Items {
		ageHours := now.Sub(submission.SubmittedAt).Hours()
		if ageHours < j.Policy.AgeThresholdHours || submission.ViewCount < j.Policy.MinViewCount {
			result.Skipped++
			continue
		}

		reviewed, err := j.Review.Approve(ctx, commands.ApproveSubmissionCommand{
			SubmissionID:  submission.SubmissionID,
			RateOverrides: j.Policy.RateOverrides,
		})
		if err != nil {
			result.Errors = append(result.Errors, SweepError{
				SubmissionID: submission.SubmissionID,
				Message:      err.Error(),
			})
			logger.Error("auto-approve sweep item failed",
				"event", "sweep_item_failed",
				"module", "campaign-ops/review-service",
				"layer", "worker",
				"campaign_id", j.Policy.CampaignID,
				"submission_id", submission.SubmissionID,
				"error", err.Error(),
			)
			continue
		}
		result.Approved++
		result.TotalPayout = payoutdomain.RoundCurrency(result.TotalPayout + reviewed.Breakdown.FinalPayout)
	}

	if j.Publisher != nil {
		_ = j.Publisher.Publish(ctx, events.TopicSweepCompleted, events.Envelope{
			EventID:       result.SweepID,
			EventType:     "sweep_completed",
			SourceService: "review-service",
			OccurredAtUTC: now,
			EntityType:    "campaign",
			EntityID:      j.Policy.CampaignID,
			Payload:       result,
		})
	}
	logger.Info("auto-approve sweep completed",
		"event", "sweep_completed",
		"module", "campaign-ops/review-service",
		"layer", "worker",
		"campaign_id", j.Policy.CampaignID,
		"sweep_id", result.SweepID,
		"approved", result.Approved,
		"skipped", result.Skipped,
		"failed", len(result.Errors),
		"total_payout", result.TotalPayout,
	)
	return result, nil
}

func (j AutoApproveJob) now() time.Time {
	if j.Clock == nil {
		return time.Now().UTC()
	}
	return j.Clock.Now().UTC()
}
