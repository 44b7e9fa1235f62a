package campaignservice

import (
	"log/slog"

	httpadapter "clipops/contexts/campaign-ops/campaign-service/adapters/http"
	"clipops/contexts/campaign-ops/campaign-service/adapters/memory"
	"clipops/contexts/campaign-ops/campaign-service/adapters/remote"
	"clipops/contexts/campaign-ops/campaign-service/application"
	"clipops/contexts/campaign-ops/campaign-service/ports"
	"clipops/internal/platform/commerce"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	API    ports.PlatformAPI
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		API:    deps.API,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewRemoteModule wires the module against the commerce platform API.
func NewRemoteModule(client *commerce.Client, logger *slog.Logger) Module {
	return NewModule(Dependencies{
		API:    remote.PlatformAPI{Client: client},
		Logger: logger,
	})
}

// NewInMemoryModule wires the module against the in-memory platform stand-in.
func NewInMemoryModule(logger *slog.Logger) (Module, *memory.PlatformAPI) {
	api := memory.NewPlatformAPI()
	return NewModule(Dependencies{API: api, Logger: logger}), api
}
