package payoutengine

import (
	"log/slog"

	httpadapter "clipops/contexts/finance-core/payout-engine/adapters/http"
	"clipops/contexts/finance-core/payout-engine/application"
	"clipops/contexts/finance-core/payout-engine/domain"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Defaults domain.CampaignRateConfig
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Defaults: deps.Defaults,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
