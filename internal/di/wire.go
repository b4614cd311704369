//go:build wireinject
// +build wireinject

package di

import (
	"PolyXBets/pkg/config"
	"PolyXBets/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,

		// Page services
		ProvideScheduler,
		ProvideSeriesGenerator,
		ProvideSparkline,
		ProvideActionLimiter,
		ProvideTimings,
		ProvideHub,

		// Transport
		ProvideSiteHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
