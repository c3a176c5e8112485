package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/digitalhub/internal/interface/http"
	"github.com/oksasatya/digitalhub/internal/interface/middleware"
)

type StartupModule struct {
	Handler  *handlers.StartupHandler
	Sessions middleware.SessionSource
}

func NewStartupModule(h *handlers.StartupHandler, sessions middleware.SessionSource) *StartupModule {
	return &StartupModule{Handler: h, Sessions: sessions}
}

func (m *StartupModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/startups")
	g.POST("/refresh", m.Handler.Refresh)
	g.GET("", m.Handler.List)
	g.GET("/featured", m.Handler.Featured)
	g.GET("/sectors", m.Handler.Sectors)
	g.PUT("/filter", m.Handler.SetFilter)
	g.DELETE("/error", m.Handler.ClearError)

	auth := g.Group("")
	auth.Use(middleware.RequireSession(m.Sessions))
	{
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
