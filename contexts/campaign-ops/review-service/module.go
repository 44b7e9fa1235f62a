package reviewservice

import (
	"log/slog"
	"time"

	httpadapter "clipops/contexts/campaign-ops/review-service/adapters/http"
	"clipops/contexts/campaign-ops/review-service/adapters/memory"
	"clipops/contexts/campaign-ops/review-service/adapters/rates"
	"clipops/contexts/campaign-ops/review-service/application/commands"
	"clipops/contexts/campaign-ops/review-service/application/queries"
	"clipops/contexts/campaign-ops/review-service/application/workers"
	"clipops/contexts/campaign-ops/review-service/domain/entities"
	"clipops/contexts/campaign-ops/review-service/ports"
	payoutdomain "clipops/contexts/finance-core/payout-engine/domain"
)

type Module struct {
	Handler httpadapter.Handler
	Review  commands.ReviewSubmissionUseCase
	Queries queries.QueryUseCase
	Sweeper *workers.Sweeper
	Store   *memory.Store
}

type Dependencies struct {
	Repository    ports.Repository
	Rates         ports.RateSource
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Publisher     ports.EventPublisher
	SweepPolicy   workers.SweepPolicy
	SweepInterval time.Duration
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	review := commands.ReviewSubmissionUseCase{
		Repository: deps.Repository,
		Rates:      deps.Rates,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Publisher:  deps.Publisher,
		Locks:      commands.NewEntryLocks(),
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	sweeper := workers.NewSweeper(workers.AutoApproveJob{
		Review:     review,
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Publisher:  deps.Publisher,
		Policy:     deps.SweepPolicy,
		Logger:     deps.Logger,
	}, deps.SweepInterval, deps.Logger)

	return Module{
		Handler: httpadapter.Handler{
			Review:  review,
			Queries: queryUseCase,
			Logger:  deps.Logger,
		},
		Review:  review,
		Queries: queryUseCase,
		Sweeper: sweeper,
	}
}

// NewInMemoryModule wires the module against the in-memory store with static
// rates, the pattern tests and local runs use.
func NewInMemoryModule(
	seed []entities.Submission,
	defaults payoutdomain.CampaignRateConfig,
	policy workers.SweepPolicy,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository:  store,
		Rates:       rates.Static{Defaults: defaults},
		Clock:       store,
		IDGen:       store,
		SweepPolicy: policy,
		Logger:      logger,
	})
	module.Store = store
	return module
}
