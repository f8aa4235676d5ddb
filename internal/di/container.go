// Package di provides dependency injection configuration for the hub
// server.
package di

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/portfoliohub/hub-server/internal/config"
	"github.com/portfoliohub/hub-server/internal/di/providers"
	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/media/images"
	"github.com/portfoliohub/hub-server/internal/screentime"
	"github.com/portfoliohub/hub-server/internal/service"
	"github.com/portfoliohub/hub-server/internal/session"
	"github.com/portfoliohub/hub-server/internal/store"
	"github.com/portfoliohub/hub-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Storage layer
	do.Provide(injector, providers.ProvideSessionStore)
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideUploadStorage)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	// Business services
	do.Provide(injector, providers.ProvideScreenTimeProvider)
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideBlogService)
	do.Provide(injector, providers.ProvideProductivityService)

	// Workers
	do.Provide(injector, providers.ProvideFileWatcher)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and starts the server. Invoking each
// service triggers its lazy construction in dependency order.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	log := do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[session.Store](injector)
	_ = do.MustInvoke[*store.Store](injector)
	_ = do.MustInvoke[*images.Storage](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[screentime.Provider](injector)
	_ = do.MustInvoke[*service.AuthService](injector)
	blogService := do.MustInvoke[*service.BlogService](injector)
	_ = do.MustInvoke[*service.ProductivityService](injector)
	_ = do.MustInvoke[*providers.FileWatcherHandle](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Bring the search index in line with whatever is on disk.
	if err := blogService.Reindex(context.Background()); err != nil {
		log.WithError(err).Warn("initial blog reindex failed")
	}

	return nil
}
