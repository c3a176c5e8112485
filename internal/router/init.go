package router

import (
	"github.com/oksasatya/digitalhub/internal/container"
	handlers "github.com/oksasatya/digitalhub/internal/interface/http"
	"github.com/oksasatya/digitalhub/internal/router/modules"
)

// InitModules builds handlers over the container's store and registers every
// module. Call once during startup, after the container is populated.
func InitModules(r *Registry) {
	store := container.GetStore()
	logger := container.GetLogger()

	r.Add(modules.NewSessionModule(handlers.NewSessionHandler(store.Session, logger)))
	r.Add(modules.NewStartupModule(handlers.NewStartupHandler(store.Startups, logger), store.Session))
	r.Add(modules.NewEventModule(handlers.NewEventHandler(store, logger)))
	r.Add(modules.NewDiscussionModule(handlers.NewDiscussionHandler(store.Discussions, logger)))
	r.Add(modules.NewImageModule(handlers.NewImageHandler(store.Images, logger)))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(store), store.Session))
	if cfg := container.GetConfig(); cfg == nil || cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(store.Session))
	}
}
