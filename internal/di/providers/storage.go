package providers

import (
	"github.com/samber/do/v2"

	"github.com/portfoliohub/hub-server/internal/config"
	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/media/images"
	"github.com/portfoliohub/hub-server/internal/session"
	"github.com/portfoliohub/hub-server/internal/store"
)

// ProvideSessionStore provides the in-memory session store.
func ProvideSessionStore(i do.Injector) (session.Store, error) {
	return session.NewMemoryStore(), nil
}

// ProvideStore provides the file-backed document repository.
func ProvideStore(i do.Injector) (*store.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return store.New(cfg.Storage.DataPath, log.Logger)
}

// ProvideUploadStorage provides the journal photo storage.
func ProvideUploadStorage(i do.Injector) (*images.Storage, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return images.NewStorage(cfg.Storage.UploadsPath)
}
