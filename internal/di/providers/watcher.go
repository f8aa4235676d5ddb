package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/service"
	"github.com/portfoliohub/hub-server/internal/store"
	"github.com/portfoliohub/hub-server/internal/watcher"
)

// FileWatcherHandle wraps the data-dir watcher with Shutdownable.
type FileWatcherHandle struct {
	Watcher *watcher.FileWatcher
}

// Shutdown implements do.Shutdownable.
func (h *FileWatcherHandle) Shutdown() error {
	return h.Watcher.Close()
}

// ProvideFileWatcher watches the blog document for hand edits and
// rebuilds the search index when it changes outside the process.
func ProvideFileWatcher(i do.Injector) (*FileWatcherHandle, error) {
	st := do.MustInvoke[*store.Store](i)
	blogService := do.MustInvoke[*service.BlogService](i)
	log := do.MustInvoke[*logger.Logger](i)

	w, err := watcher.New(st.BlogPath(), func() {
		if err := blogService.Reindex(context.Background()); err != nil {
			log.WithError(err).Warn("failed to reindex blog after external edit")
		} else {
			log.Info("reindexed blog after external edit")
		}
	}, log.Logger)
	if err != nil {
		return nil, err
	}

	return &FileWatcherHandle{Watcher: w}, nil
}
