package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"clipops/contexts/campaign-ops/review-service/application"
	domainerrors "clipops/contexts/campaign-ops/review-service/domain/errors"
)

const defaultSweepInterval = 15 * time.Minute

// Sweeper runs the auto-approve job on a recurring schedule: an immediate
// sweep on start, then one per interval until stopped. Stop halts future
// ticks; an in-flight sweep runs to completion. A per-campaign flag keeps a
// slow sweep from overlapping the next tick or an on-demand run.
type Sweeper struct {
	Job      AutoApproveJob
	Interval time.Duration
	Logger   *slog.Logger

	mu        sync.Mutex
	scheduler gocron.Scheduler
	inFlight  map[string]bool
}

func NewSweeper(job AutoApproveJob, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		Job:      job,
		Interval: interval,
		Logger:   logger,
		inFlight: make(map[string]bool),
	}
}

// Start transitions the sweeper to running. Starting a running sweeper is a
// no-op.
func (s *Sweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scheduler != nil {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval()),
		gocron.NewTask(s.tick),
		gocron.WithName("auto-approve-"+s.Job.Policy.CampaignID),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}
	scheduler.Start()
	s.scheduler = scheduler

	application.ResolveLogger(s.Logger).Info("sweeper started",
		"event", "sweeper_started",
		"module", "campaign-ops/review-service",
		"layer", "worker",
		"campaign_id", s.Job.Policy.CampaignID,
		"interval", s.interval().String(),
	)
	return nil
}

// Stop prevents any future tick. Stopping a stopped sweeper is a no-op.
func (s *Sweeper) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scheduler == nil {
		return nil
	}
	err := s.scheduler.Shutdown()
	s.scheduler = nil

	application.ResolveLogger(s.Logger).Info("sweeper stopped",
		"event", "sweeper_stopped",
		"module", "campaign-ops/review-service",
		"layer", "worker",
		"campaign_id", s.Job.Policy.CampaignID,
	)
	return err
}

// Running reports whether the recurring schedule is active.
func (s *Sweeper) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler != nil
}

// RunOnce performs an on-demand sweep, honoring the same in-flight guard as
// the scheduled ticks.
func (s *Sweeper) RunOnce(ctx context.Context) (SweepResult, error) {
	campaignID := s.Job.Policy.CampaignID
	if !s.beginSweep(campaignID) {
		return SweepResult{CampaignID: campaignID}, domainerrors.ErrSweepInProgress
	}
	defer s.endSweep(campaignID)
	return s.Job.RunOnce(ctx)
}

func (s *Sweeper) tick() {
	campaignID := s.Job.Policy.CampaignID
	if !s.beginSweep(campaignID) {
		application.ResolveLogger(s.Logger).Warn("sweep tick skipped, previous sweep still in flight",
			"event", "sweep_tick_skipped",
			"module", "campaign-ops/review-service",
			"layer", "worker",
			"campaign_id", campaignID,
		)
		return
	}
	defer s.endSweep(campaignID)

	if _, err := s.Job.RunOnce(context.Background()); err != nil {
		application.ResolveLogger(s.Logger).Error("scheduled sweep failed",
			"event", "sweep_tick_failed",
			"module", "campaign-ops/review-service",
			"layer", "worker",
			"campaign_id", campaignID,
			"error", err.Error(),
		)
	}
}

func (s *Sweeper) beginSweep(campaignID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight == nil {
		s.inFlight = make(map[string]bool)
	}
	if s.inFlight[campaignID] {
		return false
	}
	s.inFlight[campaignID] = true
	return true
}

func (s *Sweeper) endSweep(campaignID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, campaignID)
}

func (s *Sweeper) interval() time.Duration {
	if s.Interval <= 0 {
		return defaultSweepInterval
	}
	return s.Interval
}
