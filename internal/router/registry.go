package router

import "github.com/gin-gonic/gin"

// Module is one resource of the directory API (session, startups, events and
// so on) mounted under the /api group.
type Module interface {
	Register(api *gin.RouterGroup)
}

// Registry collects the API modules and the middlewares shared by all of them.
// Engine-wide middlewares (recovery, request id, CORS) are installed on the
// engine directly; Use is for the /api group only.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
	mounted     bool
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts every added module. Later calls are no-ops, since gin
// panics on a route registered twice.
func (r *Registry) RegisterAll() {
	if r.mounted {
		return
	}
	r.mounted = true
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
