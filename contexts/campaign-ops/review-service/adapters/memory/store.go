package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"clipops/contexts/campaign-ops/review-service/domain/entities"
	domainerrors "clipops/contexts/campaign-ops/review-service/domain/errors"
	"clipops/contexts/campaign-ops/review-service/ports"

	"github.com/google/uuid"
)

const defaultPageSize = 50

// Store is the in-memory stand-in for the remote submission repository, used
// by tests and local runs. It enforces the same status-conflict rules the
// remote platform reports.
type Store struct {
	mu sync.RWMutex

	submissions map[string]entities.Submission

	// NowFunc overrides the clock for deterministic tests.
	NowFunc func() time.Time
}

func NewStore(seed []entities.Submission) *Store {
	submissions := make(map[string]entities.Submission, len(seed))
	for _, item := range seed {
		submissions[item.SubmissionID] = item
	}
	return &Store{submissions: submissions}
}

func (s *Store) ListSubmissions(_ context.Context, filter ports.SubmissionFilter) (ports.SubmissionPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Submission, 0, len(s.submissions))
	for _, item := range s.submissions {
		if campaignID := strings.TrimSpace(filter.CampaignID); campaignID != "" && item.CampaignID != campaignID {
			continue
		}
		if submitterID := strings.TrimSpace(filter.SubmitterID); submitterID != "" && item.SubmitterID != submitterID {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].SubmittedAt.Equal(items[j].SubmittedAt) {
			return items[i].SubmissionID < items[j].SubmissionID
		}
		return items[i].SubmittedAt.After(items[j].SubmittedAt)
	})

	offset := 0
	if cursor := strings.TrimSpace(filter.Cursor); cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 0 {
			return ports.SubmissionPage{}, domainerrors.ErrInvalidReviewInput
		}
		offset = parsed
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	if offset >= len(items) {
		return ports.SubmissionPage{}, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	page := ports.SubmissionPage{Items: items[offset:end]}
	if end < len(items) {
		page.HasMore = true
		page.NextCursor = strconv.Itoa(end)
	}
	return page, nil
}

func (s *Store) GetSubmission(_ context.Context, submissionID string) (entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.submissions[strings.TrimSpace(submissionID)]
	if !exists {
		return entities.Submission{}, domainerrors.ErrSubmissionNotFound
	}
	return item, nil
}

func (s *Store) ApproveSubmission(_ context.Context, submissionID string, command ports.ApprovalCommand) (entities.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.submissions[strings.TrimSpace(submissionID)]
	if !exists {
		return entities.Submission{}, domainerrors.ErrSubmissionNotFound
	}
	if !item.Reviewable() {
		return entities.Submission{}, &domainerrors.StateConflictError{
			SubmissionID:  item.SubmissionID,
			CurrentStatus: item.Status,
		}
	}

	now := s.Now()
	item.Status = entities.SubmissionStatusApproved
	item.ReviewedAt = &now
	item.CalculatedPayout = command.PayoutAmount
	item.StatusReason = ""
	s.submissions[item.SubmissionID] = item
	return item, nil
}

func (s *Store) DenySubmission(_ context.Context, submissionID string, reason string) (entities.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.submissions[strings.TrimSpace(submissionID)]
	if !exists {
		return entities.Submission{}, domainerrors.ErrSubmissionNotFound
	}
	if !item.Reviewable() {
		return entities.Submission{}, &domainerrors.StateConflictError{
			SubmissionID:  item.SubmissionID,
			CurrentStatus: item.Status,
		}
	}

	now := s.Now()
	item.Status = entities.SubmissionStatusRejected
	item.ReviewedAt = &now
	item.StatusReason = reason
	s.submissions[item.SubmissionID] = item
	return item, nil
}

// Put inserts or replaces a submission, bypassing review rules. Test helper.
func (s *Store) Put(submission entities.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions[submission.SubmissionID] = submission
}

func (s *Store) Now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc().UTC()
	}
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
