package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"clipops/contexts/campaign-ops/review-service/application"
	"clipops/contexts/campaign-ops/review-service/domain/entities"
	domainerrors "clipops/contexts/campaign-ops/review-service/domain/errors"
	"clipops/contexts/campaign-ops/review-service/ports"
	payoutdomain "clipops/contexts/finance-core/payout-engine/domain"
	"clipops/internal/shared/events"
)

type ApproveSubmissionCommand struct {
	SubmissionID      string
	ViewCountOverride *int64
	RateOverrides     payoutdomain.RateOverrides
}

type RejectSubmissionCommand struct {
	SubmissionID string
	Reason       string
}

// ReviewResult pairs the post-decision submission with the breakdown that
// priced it, so downstream payout issuance can act on FinalPayout.
type ReviewResult struct {
	Submission entities.Submission
	Breakdown  payoutdomain.PayoutBreakdown
}

type ReviewSubmissionUseCase struct {
	Repository ports.Repository
	Rates      ports.RateSource
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Publisher  ports.EventPublisher
	Locks      *EntryLocks
	Logger     *slog.Logger
}

// Approve drives a pending or flagged submission to approved. The breakdown is
// computed fresh from the current (or overridden) view count; a zero final
// payout still approves the entry.
func (uc ReviewSubmissionUseCase) Approve(ctx context.Context, cmd ApproveSubmissionCommand) (ReviewResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	submissionID := strings.TrimSpace(cmd.SubmissionID)
	if submissionID == "" {
		return ReviewResult{}, domainerrors.ErrInvalidReviewInput
	}
	if cmd.ViewCountOverride != nil && *cmd.ViewCountOverride < 0 {
		return ReviewResult{}, domainerrors.ErrNegativeViewCount
	}

	unlock := uc.Locks.Lock(submissionID)
	defer unlock()

	submission, err := uc.Repository.GetSubmission(ctx, submissionID)
	if err != nil {
		return ReviewResult{}, err
	}
	if !submission.Reviewable() {
		return ReviewResult{}, &domainerrors.StateConflictError{
			SubmissionID:  submissionID,
			CurrentStatus: submission.Status,
		}
	}

	config, err := uc.Rates.ResolveRateConfig(ctx, submission.CampaignID)
	if err != nil {
		return ReviewResult{}, err
	}
	config = payoutdomain.ResolveRateConfig(config, cmd.RateOverrides)

	viewCount := submission.ViewCount
	if cmd.ViewCountOverride != nil {
		viewCount = *cmd.ViewCountOverride
	}
	breakdown := payoutdomain.CalculatePayout(viewCount, config)

	updated, err := uc.Repository.ApproveSubmission(ctx, submissionID, ports.ApprovalCommand{
		PayoutAmount: breakdown.FinalPayout,
		Metadata: map[string]any{
			"view_count":   breakdown.ViewCount,
			"cpm_payout":   breakdown.CPMPayout,
			"flat_fee":     breakdown.FlatFee,
			"bonus_payout": breakdown.BonusPayout,
			"gross_total":  breakdown.GrossTotal,
			"capped_total": breakdown.CappedTotal,
			"was_capped":   breakdown.WasCapped,
		},
	})
	if err != nil {
		return ReviewResult{}, err
	}
	if updated.ReviewedAt == nil {
		now := uc.now()
		updated.ReviewedAt = &now
	}

	uc.publish(ctx, events.TopicSubmissionApproved, "submission_approved", updated, breakdown.FinalPayout)
	logger.Info("submission approved",
		"event", "submission_approved",
		"module", "campaign-ops/review-service",
		"layer", "application",
		"submission_id", updated.SubmissionID,
		"campaign_id", updated.CampaignID,
		"view_count", breakdown.ViewCount,
		"final_payout", breakdown.FinalPayout,
		"was_capped", breakdown.WasCapped,
	)
	return ReviewResult{Submission: updated, Breakdown: breakdown}, nil
}

// Reject drives a pending or flagged submission to rejected. A non-empty
// reason is mandatory.
func (uc ReviewSubmissionUseCase) Reject(ctx context.Context, cmd RejectSubmissionCommand) (entities.Submission, error) {
	logger := application.ResolveLogger(uc.Logger)
	submissionID := strings.TrimSpace(cmd.SubmissionID)
	if submissionID == "" {
		return entities.Submission{}, domainerrors.ErrInvalidReviewInput
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return entities.Submission{}, domainerrors.ErrEmptyRejectionReason
	}

	unlock := uc.Locks.Lock(submissionID)
	defer unlock()

	submission, err := uc.Repository.GetSubmission(ctx, submissionID)
	if err != nil {
		return entities.Submission{}, err
	}
	if !submission.Reviewable() {
		return entities.Submission{}, &domainerrors.StateConflictError{
			SubmissionID:  submissionID,
			CurrentStatus: submission.Status,
		}
	}

	updated, err := uc.Repository.DenySubmission(ctx, submissionID, reason)
	if err != nil {
		return entities.Submission{}, err
	}
	if updated.ReviewedAt == nil {
		now := uc.now()
		updated.ReviewedAt = &now
	}

	uc.publish(ctx, events.TopicSubmissionRejected, "submission_rejected", updated, 0)
	logger.Info("submission rejected",
		"event", "submission_rejected",
		"module", "campaign-ops/review-service",
		"layer", "application",
		"submission_id", updated.SubmissionID,
		"campaign_id", updated.CampaignID,
		"reason", reason,
	)
	return updated, nil
}

func (uc ReviewSubmissionUseCase) publish(ctx context.Context, topic string, eventType string, submission entities.Submission, payout float64) {
	if uc.Publisher == nil {
		return
	}
	eventID := ""
	if uc.IDGen != nil {
		if id, err := uc.IDGen.NewID(ctx); err == nil {
			eventID = id
		}
	}
	_ = uc.Publisher.Publish(ctx, topic, events.Envelope{
		EventID:       eventID,
		EventType:     eventType,
		SourceService: "review-service",
		OccurredAtUTC: uc.now(),
		EntityType:    "submission",
		EntityID:      submission.SubmissionID,
		Payload: map[string]any{
			"submission_id": submission.SubmissionID,
			"campaign_id":   submission.CampaignID,
			"submitter_id":  submission.SubmitterID,
			"status":        string(submission.Status),
			"status_reason": submission.StatusReason,
			"payout_amount": payout,
		},
	})
}

func (uc ReviewSubmissionUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
