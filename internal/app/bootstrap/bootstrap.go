package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	campaignservice "clipops/contexts/campaign-ops/campaign-service"
	reviewservice "clipops/contexts/campaign-ops/review-service"
	reviewmemory "clipops/contexts/campaign-ops/review-service/adapters/memory"
	"clipops/contexts/campaign-ops/review-service/adapters/rates"
	reviewremote "clipops/contexts/campaign-ops/review-service/adapters/remote"
	"clipops/contexts/campaign-ops/review-service/application/workers"
	contentservice "clipops/contexts/engagement/content-service"
	contentapp "clipops/contexts/engagement/content-service/application"
	contentdomain "clipops/contexts/engagement/content-service/domain"
	payoutengine "clipops/contexts/finance-core/payout-engine"
	"clipops/internal/platform/commerce"
	"clipops/internal/platform/config"
	"clipops/internal/platform/httpserver"
	"clipops/internal/platform/messaging"
	"clipops/internal/platform/webhooks"
	"clipops/internal/shared/events"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server  *httpserver.Server
	bus     *messaging.Bus
	content contentservice.Module
	logger  *slog.Logger
}

type WorkerApp struct {
	sweeper *workers.Sweeper
	enabled bool
	logger  *slog.Logger
}

// CLIApp exposes the wired modules to clipctl commands.
type CLIApp struct {
	Review    reviewservice.Module
	Payouts   payoutengine.Module
	Campaigns campaignservice.Module
	Logger    *slog.Logger
}

type modules struct {
	review    reviewservice.Module
	payouts   payoutengine.Module
	campaigns campaignservice.Module
	content   contentservice.Module
	bus       *messaging.Bus
	cfg       config.Config
	logger    *slog.Logger
}

func buildModules(process string) (modules, error) {
	cfg, err := config.Load()
	if err != nil {
		return modules{}, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", process)

	defaults, err := config.LoadRateDefaults(cfg.RateDefaultsFile)
	if err != nil {
		return modules{}, err
	}

	bus := messaging.NewBus(logger)
	policy := workers.SweepPolicy{
		CampaignID:        cfg.SweepCampaignID,
		AgeThresholdHours: cfg.SweepAgeThresholdHours,
		MinViewCount:      cfg.SweepMinViewCount,
		BatchLimit:        cfg.SweepBatchLimit,
	}

	var review reviewservice.Module
	var campaigns campaignservice.Module

	if cfg.PlatformBaseURL == "" {
		// No platform credentials: run against in-process stores. Local
		// development and tests only.
		store := reviewmemory.NewStore(nil)
		review = reviewservice.NewModule(reviewservice.Dependencies{
			Repository:    store,
			Rates:         rates.Static{Defaults: defaults},
			Clock:         store,
			IDGen:         store,
			Publisher:     bus,
			SweepPolicy:   policy,
			SweepInterval: cfg.SweepInterval,
			Logger:        logger,
		})
		review.Store = store
		campaigns, _ = campaignservice.NewInMemoryModule(logger)
	} else {
		client := commerce.NewClient(cfg.PlatformBaseURL, cfg.PlatformAPIKey)
		review = reviewservice.NewModule(reviewservice.Dependencies{
			Repository:    reviewremote.NewRepository(client, logger),
			Rates:         rates.Remote{Client: client, Defaults: defaults},
			Clock:         reviewremote.SystemClock{},
			IDGen:         reviewremote.UUIDGenerator{},
			Publisher:     bus,
			SweepPolicy:   policy,
			SweepInterval: cfg.SweepInterval,
			Logger:        logger,
		})
		campaigns = campaignservice.NewRemoteModule(client, logger)
	}

	payouts := payoutengine.NewModule(payoutengine.Dependencies{
		Defaults: defaults,
		Logger:   logger,
	})
	content := contentservice.NewInMemoryModule(logger)

	return modules{
		review:    review,
		payouts:   payouts,
		campaigns: campaigns,
		content:   content,
		bus:       bus,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

func BuildAPI() (*APIApp, error) {
	mods, err := buildModules("api")
	if err != nil {
		return nil, err
	}

	dispatcher := buildDispatcher(mods.content.Service, mods.logger)
	server := httpserver.New(
		mods.review,
		mods.payouts,
		mods.campaigns,
		mods.content,
		webhooks.Verifier{Secret: mods.cfg.WebhookSecret},
		dispatcher,
		mods.logger,
		normalizeAddr(mods.cfg.HTTPPort),
		mods.cfg.EnableSwaggerUI,
	)

	return &APIApp{
		server:  server,
		bus:     mods.bus,
		content: mods.content,
		logger:  mods.logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	mods, err := buildModules("worker")
	if err != nil {
		return nil, err
	}

	enabled := mods.cfg.EnableAutoApprove && mods.cfg.SweepCampaignID != ""
	if mods.cfg.EnableAutoApprove && mods.cfg.SweepCampaignID == "" {
		return nil, errors.New("SWEEP_CAMPAIGN_ID is required when auto-approve is enabled")
	}

	return &WorkerApp{
		sweeper: mods.review.Sweeper,
		enabled: enabled,
		logger:  mods.logger,
	}, nil
}

func BuildCLI() (*CLIApp, error) {
	mods, err := buildModules("cli")
	if err != nil {
		return nil, err
	}
	return &CLIApp{
		Review:    mods.review,
		Payouts:   mods.payouts,
		Campaigns: mods.campaigns,
		Logger:    mods.logger,
	}, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	a.subscribeContent(ctx)

	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.server.Start()
}

func (a *APIApp) subscribeContent(ctx context.Context) {
	notify := func(topic string) func(context.Context, events.Envelope) error {
		return func(ctx context.Context, envelope events.Envelope) error {
			a.content.Service.HandleReviewEvent(ctx, topic, envelope)
			return nil
		}
	}
	a.bus.Subscribe(ctx, events.TopicSubmissionApproved, notify(events.TopicSubmissionApproved))
	a.bus.Subscribe(ctx, events.TopicSubmissionRejected, notify(events.TopicSubmissionRejected))
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if !w.enabled {
		w.logger.Info("auto-approve disabled, worker idling",
			"event", "bootstrap_worker_idle",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		<-ctx.Done()
		return nil
	}

	if err := w.sweeper.Start(); err != nil {
		return err
	}
	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	<-ctx.Done()
	return w.sweeper.Stop()
}

// buildDispatcher maps platform webhook events onto content notifications.
// Unregistered event types are acknowledged by the dispatcher itself.
func buildDispatcher(content contentapp.Service, logger *slog.Logger) *webhooks.Dispatcher {
	dispatcher := webhooks.NewDispatcher(logger)

	dispatcher.On("membership.created", func(event webhooks.Event) error {
		var data struct {
			UserName string `json:"user_name"`
		}
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return err
		}
		if strings.TrimSpace(data.UserName) == "" {
			data.UserName = "creator"
		}
		_, err := content.Generate(context.Background(), contentapp.GenerateInput{
			Template: string(contentdomain.TemplateWelcomeMessage),
			Fields:   map[string]string{"creator_name": data.UserName},
		})
		return err
	})

	dispatcher.On("payment.succeeded", func(event webhooks.Event) error {
		var data struct {
			CampaignTitle string  `json:"campaign_title"`
			Amount        float64 `json:"amount"`
			UserID        string  `json:"user_id"`
		}
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return err
		}
		_, err := content.Generate(context.Background(), contentapp.GenerateInput{
			Template: string(contentdomain.TemplatePayoutNotification),
			Audience: data.UserID,
			Fields: map[string]string{
				"campaign_title": data.CampaignTitle,
				"payout_amount":  formatAmount(data.Amount),
			},
		})
		return err
	})

	return dispatcher
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
