package remote

import (
	"context"
	"errors"
	"log/slog"

	"clipops/contexts/campaign-ops/review-service/domain/entities"
	domainerrors "clipops/contexts/campaign-ops/review-service/domain/errors"
	"clipops/contexts/campaign-ops/review-service/ports"
	"clipops/internal/platform/commerce"
)

// Repository adapts the commerce platform client to the review-service
// repository port. Platform errors are translated into the domain taxonomy;
// everything unexplained becomes a RepositoryError.
type Repository struct {
	Client *commerce.Client
	Logger *slog.Logger
}

func NewRepository(client *commerce.Client, logger *slog.Logger) Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return Repository{Client: client, Logger: logger}
}

func (r Repository) ListSubmissions(ctx context.Context, filter ports.SubmissionFilter) (ports.SubmissionPage, error) {
	page, err := r.Client.ListEntries(ctx, commerce.EntryListParams{
		CampaignID: filter.CampaignID,
		UserID:     filter.SubmitterID,
		Status:     string(filter.Status),
		Cursor:     filter.Cursor,
		Limit:      filter.Limit,
	})
	if err != nil {
		return ports.SubmissionPage{}, r.mapError("list", "", err, entities.SubmissionStatus(""))
	}

	items := make([]entities.Submission, 0, len(page.Data))
	for _, entry := range page.Data {
		items = append(items, mapEntry(entry))
	}
	return ports.SubmissionPage{
		Items:      items,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}, nil
}

func (r Repository) GetSubmission(ctx context.Context, submissionID string) (entities.Submission, error) {
	entry, err := r.Client.GetEntry(ctx, submissionID)
	if err != nil {
		return entities.Submission{}, r.mapError("get", submissionID, err, entities.SubmissionStatus(""))
	}
	return mapEntry(entry), nil
}

func (r Repository) ApproveSubmission(ctx context.Context, submissionID string, command ports.ApprovalCommand) (entities.Submission, error) {
	entry, err := r.Client.ApproveEntry(ctx, submissionID, command.PayoutAmount, command.Metadata)
	if err != nil {
		return entities.Submission{}, r.mapError("approve", submissionID, err, currentStatus(ctx, r.Client, submissionID))
	}
	return mapEntry(entry), nil
}

func (r Repository) DenySubmission(ctx context.Context, submissionID string, reason string) (entities.Submission, error) {
	entry, err := r.Client.DenyEntry(ctx, submissionID, reason)
	if err != nil {
		return entities.Submission{}, r.mapError("deny", submissionID, err, currentStatus(ctx, r.Client, submissionID))
	}
	return mapEntry(entry), nil
}

func (r Repository) mapError(op string, submissionID string, err error, status entities.SubmissionStatus) error {
	switch {
	case errors.Is(err, commerce.ErrNotFound):
		return domainerrors.ErrSubmissionNotFound
	case errors.Is(err, commerce.ErrConflict):
		return &domainerrors.StateConflictError{
			SubmissionID:  submissionID,
			CurrentStatus: status,
		}
	default:
		return &domainerrors.RepositoryError{
			Op:           op,
			SubmissionID: submissionID,
			Err:          err,
		}
	}
}

// currentStatus best-effort refetches the entry so a conflict error can carry
// the status that blocked the transition.
func currentStatus(ctx context.Context, client *commerce.Client, submissionID string) entities.SubmissionStatus {
	entry, err := client.GetEntry(ctx, submissionID)
	if err != nil {
		return entities.SubmissionStatus("")
	}
	return entities.SubmissionStatus(entry.Status)
}

func mapEntry(entry commerce.Entry) entities.Submission {
	return entities.Submission{
		SubmissionID:     entry.ID,
		CampaignID:       entry.CampaignID,
		SubmitterID:      entry.UserID,
		ContentURL:       entry.ContentURL,
		Platform:         entities.NormalizePlatform(entry.Platform),
		ViewCount:        entry.ViewCount,
		Status:           entities.SubmissionStatus(entry.Status),
		SubmittedAt:      entry.SubmittedAt,
		ReviewedAt:       entry.ReviewedAt,
		StatusReason:     entry.StatusReason,
		CalculatedPayout: entry.CalculatedPayout,
		ActualPayout:     entry.ActualPayout,
		TransferID:       entry.TransferID,
	}
}
