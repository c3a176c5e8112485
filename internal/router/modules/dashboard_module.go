package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/digitalhub/internal/interface/http"
	"github.com/oksasatya/digitalhub/internal/interface/middleware"
)

type DashboardModule struct {
	Handler  *handlers.DashboardHandler
	Sessions middleware.SessionSource
}

func NewDashboardModule(h *handlers.DashboardHandler, sessions middleware.SessionSource) *DashboardModule {
	return &DashboardModule{Handler: h, Sessions: sessions}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard", middleware.RequireDashboard(m.Sessions), m.Handler.Get)
}
