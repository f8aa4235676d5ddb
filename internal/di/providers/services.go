package providers

import (
	"github.com/samber/do/v2"

	"github.com/portfoliohub/hub-server/internal/config"
	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/media/images"
	"github.com/portfoliohub/hub-server/internal/screentime"
	"github.com/portfoliohub/hub-server/internal/service"
	"github.com/portfoliohub/hub-server/internal/session"
	"github.com/portfoliohub/hub-server/internal/store"
	"github.com/portfoliohub/hub-server/internal/validation"
)

// ProvideScreenTimeProvider provides the screen-time source. Only the
// mock exists today; a real device integration would slot in here.
func ProvideScreenTimeProvider(i do.Injector) (screentime.Provider, error) {
	return screentime.NewMockProvider(), nil
}

// ProvideAuthService provides the auth service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	sessions := do.MustInvoke[session.Store](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(cfg, sessions, log), nil
}

// ProvideBlogService provides the blog service.
func ProvideBlogService(i do.Injector) (*service.BlogService, error) {
	st := do.MustInvoke[*store.Store](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBlogService(st, indexHandle.Index, v, log), nil
}

// ProvideProductivityService provides the productivity service.
func ProvideProductivityService(i do.Injector) (*service.ProductivityService, error) {
	st := do.MustInvoke[*store.Store](i)
	uploads := do.MustInvoke[*images.Storage](i)
	provider := do.MustInvoke[screentime.Provider](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProductivityService(st, uploads, provider, v, log), nil
}
