package ports

import (
	"context"
	"time"

	"clipops/contexts/campaign-ops/review-service/domain/entities"
	payoutdomain "clipops/contexts/finance-core/payout-engine/domain"
	"clipops/internal/shared/events"
)

// SubmissionFilter is a conjunction over the supported remote filters.
// Platform is not filterable server-side; the query layer post-filters it on
// each returned page.
type SubmissionFilter struct {
	CampaignID  string
	SubmitterID string
	Status      entities.SubmissionStatus
	Cursor      string
	Limit       int
}

type SubmissionPage struct {
	Items      []entities.Submission
	NextCursor string
	HasMore    bool
}

// ApprovalCommand carries the payout decision sent to the remote repository.
type ApprovalCommand struct {
	PayoutAmount float64
	Metadata     map[string]any
}

// Repository is the remote system of record for submissions. It must surface
// not-found and status conflicts as distinguishable errors.
type Repository interface {
	ListSubmissions(ctx context.Context, filter SubmissionFilter) (SubmissionPage, error)
	GetSubmission(ctx context.Context, submissionID string) (entities.Submission, error)
	ApproveSubmission(ctx context.Context, submissionID string, command ApprovalCommand) (entities.Submission, error)
	DenySubmission(ctx context.Context, submissionID string, reason string) (entities.Submission, error)
}

// RateSource resolves the effective rate config for a campaign, defaults
// merged with any per-campaign overrides.
type RateSource interface {
	ResolveRateConfig(ctx context.Context, campaignID string) (payoutdomain.CampaignRateConfig, error)
}

// EventPublisher fans review decisions out to in-process subscribers
// (notifications, dashboards). Publishing is best-effort for the review flow.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, envelope events.Envelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
