package providers

import (
	"github.com/samber/do/v2"

	"github.com/portfoliohub/hub-server/internal/config"
	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/search"
)

// SearchIndexHandle wraps the search index with Shutdownable.
type SearchIndexHandle struct {
	Index *search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Index.Close()
}

// ProvideSearchIndex provides the blog search index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewIndex(search.Options{
		DataPath: cfg.Storage.DataPath,
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &SearchIndexHandle{Index: index}, nil
}
