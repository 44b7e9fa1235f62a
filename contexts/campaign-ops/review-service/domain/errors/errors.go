package errors

import (
	"errors"
	"fmt"

	"clipops/contexts/campaign-ops/review-service/domain/entities"
)

var (
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrEmptyRejectionReason = errors.New("rejection reason is required")
	ErrNegativeViewCount    = errors.New("view count cannot be negative")
	ErrInvalidReviewInput   = errors.New("invalid review input")
	ErrStateConflict        = errors.New("illegal submission status transition")
	ErrRepository           = errors.New("submission repository call failed")
	ErrSweepInProgress      = errors.New("sweep already in progress for campaign")
)

// StateConflictError reports an illegal transition together with the entry's
// current status, so the caller can decide the next action.
type StateConflictError struct {
	SubmissionID  string
	CurrentStatus entities.SubmissionStatus
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("submission %s cannot be reviewed in status %q", e.SubmissionID, e.CurrentStatus)
}

func (e *StateConflictError) Is(target error) bool {
	return target == ErrStateConflict
}

// RepositoryError wraps an opaque remote failure with the operation and entry
// it occurred on. It is propagated, never retried.
type RepositoryError struct {
	Op           string
	SubmissionID string
	Err          error
}

func (e *RepositoryError) Error() string {
	if e.SubmissionID == "" {
		return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("repository %s for submission %s: %v", e.Op, e.SubmissionID, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

func (e *RepositoryError) Is(target error) bool {
	return target == ErrRepository
}
