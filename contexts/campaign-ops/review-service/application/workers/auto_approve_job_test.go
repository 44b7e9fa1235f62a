package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clipops/contexts/campaign-ops/review-service/adapters/memory"
	"clipops/contexts/campaign-ops/review-service/adapters/rates"
	"clipops/contexts/campaign-ops/review-service/application/commands"
	"clipops/contexts/campaign-ops/review-service/domain/entities"
	domainerrors "clipops/contexts/campaign-ops/review-service/domain/errors"
	"clipops/contexts/campaign-ops/review-service/ports"
	payoutdomain "clipops/contexts/finance-core/payout-engine/domain"
	"clipops/internal/shared/events"
)

// failingRepository passes through to the store but fails approval for
// selected submission ids.
type failingRepository struct {
	*memory.Store
	failIDs map[string]bool
}

func (r failingRepository) ApproveSubmission(ctx context.Context, submissionID string, command ports.ApprovalCommand) (entities.Submission, error) {
	if r.failIDs[submissionID] {
		return entities.Submission{}, &domainerrors.RepositoryError{
			Op:           "approve",
			SubmissionID: submissionID,
			Err:          errors.New("platform 503"),
		}
	}
	return r.Store.ApproveSubmission(ctx, submissionID, command)
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ events.Envelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

var sweepNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func sweepDefaults() payoutdomain.CampaignRateConfig {
	return payoutdomain.CampaignRateConfig{
		CPMRate:            2,
		MinPayoutThreshold: 10,
		MaxPayoutCap:       1000,
	}
}

func sweepSubmission(id string, ageHours float64, views int64) entities.Submission {
	return entities.Submission{
		SubmissionID: id,
		CampaignID:   "camp_sweep",
		SubmitterID:  "user_1",
		Platform:     entities.PlatformTikTok,
		ViewCount:    views,
		Status:       entities.SubmissionStatusPending,
		SubmittedAt:  sweepNow.Add(-time.Duration(ageHours * float64(time.Hour))),
	}
}

func newJob(repo ports.Repository, store *memory.Store, publisher ports.EventPublisher) AutoApproveJob {
	store.NowFunc = func() time.Time { return sweepNow }
	return AutoApproveJob{
		Review: commands.ReviewSubmissionUseCase{
			Repository: repo,
			Rates:      rates.Static{Defaults: sweepDefaults()},
			Clock:      store,
			IDGen:      store,
			Locks:      commands.NewEntryLocks(),
		},
		Repository: repo,
		Clock:      store,
		IDGen:      store,
		Publisher:  publisher,
		Policy: SweepPolicy{
			CampaignID:        "camp_sweep",
			AgeThresholdHours: 72,
			MinViewCount:      1000,
		},
	}
}

func TestSweepIsolatesItemFailures(t *testing.T) {
	// Listing is newest-first, so s_b lands second in the processed batch.
	store := memory.NewStore([]entities.Submission{
		sweepSubmission("s_a", 100, 50000),
		sweepSubmission("s_b", 101, 50000),
		sweepSubmission("s_c", 102, 50000),
	})
	repo := failingRepository{Store: store, failIDs: map[string]bool{"s_b": true}}
	job := newJob(repo, store, nil)

	result, err := job.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if result.Approved != 2 {
		t.Fatalf("expected the other two items approved, got %d", result.Approved)
	}
	if len(result.Errors) != 1 || result.Errors[0].SubmissionID != "s_b" {
		t.Fatalf("expected exactly one error for s_b, got %+v", result.Errors)
	}

	for _, id := range []string{"s_a", "s_c"} {
		item, getErr := store.GetSubmission(context.Background(), id)
		if getErr != nil {
			t.Fatalf("get %s failed: %v", id, getErr)
		}
		if item.Status != entities.SubmissionStatusApproved {
			t.Fatalf("%s should be approved despite s_b failing, got %s", id, item.Status)
		}
	}
}

func TestSweepSkipsYoungAndLowViewEntries(t *testing.T) {
	store := memory.NewStore([]entities.Submission{
		sweepSubmission("s_young", 10, 50000),
		sweepSubmission("s_low", 100, 500),
		sweepSubmission("s_ok", 100, 50000),
	})
	job := newJob(store, store, nil)

	result, err := job.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if result.Approved != 1 {
		t.Fatalf("expected one approval, got %d", result.Approved)
	}
	if result.Skipped != 2 {
		t.Fatalf("expected two skips, got %d", result.Skipped)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("skips are not errors: %+v", result.Errors)
	}

	for _, id := range []string{"s_young", "s_low"} {
		item, getErr := store.GetSubmission(context.Background(), id)
		if getErr != nil {
			t.Fatalf("get %s failed: %v", id, getErr)
		}
		if item.Status != entities.SubmissionStatusPending {
			t.Fatalf("skipped entry %s must stay pending, got %s", id, item.Status)
		}
	}
}

func TestSweepAccumulatesPayoutAndPublishes(t *testing.T) {
	store := memory.NewStore([]entities.Submission{
		sweepSubmission("s_1", 100, 50000), // 100.00
		sweepSubmission("s_2", 100, 25000), // 50.00
	})
	publisher := &recordingPublisher{}
	job := newJob(store, store, publisher)

	result, err := job.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if result.TotalPayout != 150.00 {
		t.Fatalf("expected total payout 150.00, got %v", result.TotalPayout)
	}
	if result.SweepID == "" {
		t.Fatal("sweep id should be generated")
	}

	found := false
	for _, topic := range publisher.topics {
		if topic == events.TopicSweepCompleted {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected sweep.completed event, got %v", publisher.topics)
	}
}

// blockingRepository stalls ListSubmissions until released, keeping a sweep
// in flight as long as the test needs.
type blockingRepository struct {
	*memory.Store
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingRepository) ListSubmissions(ctx context.Context, filter ports.SubmissionFilter) (ports.SubmissionPage, error) {
	r.once.Do(func() {
		close(r.entered)
		<-r.release
	})
	return r.Store.ListSubmissions(ctx, filter)
}

func TestSweeperRunOnceRejectsOverlap(t *testing.T) {
	store := memory.NewStore(nil)
	repo := &blockingRepository{
		Store:   store,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	job := newJob(repo, store, nil)
	sweeper := NewSweeper(job, time.Minute, nil)

	done := make(chan error, 1)
	go func() {
		_, err := sweeper.RunOnce(context.Background())
		done <- err
	}()

	<-repo.entered
	_, err := sweeper.RunOnce(context.Background())
	if !errors.Is(err, domainerrors.ErrSweepInProgress) {
		t.Fatalf("expected ErrSweepInProgress while a sweep is in flight, got %v", err)
	}

	close(repo.release)
	if err := <-done; err != nil {
		t.Fatalf("first sweep failed: %v", err)
	}

	if _, err := sweeper.RunOnce(context.Background()); err != nil {
		t.Fatalf("sweep after release should run, got %v", err)
	}
}
