package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/digitalhub/internal/interface/http"
)

// EventModule leaves session checks to the store so that an anonymous join
// still produces its failure notification.
type EventModule struct {
	Handler *handlers.EventHandler
}

func NewEventModule(h *handlers.EventHandler) *EventModule {
	return &EventModule{Handler: h}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/events")
	g.POST("/refresh", m.Handler.Refresh)
	g.GET("", m.Handler.List)
	g.GET("/upcoming", m.Handler.Upcoming)
	g.GET("/mine", m.Handler.Mine)
	g.DELETE("/error", m.Handler.ClearError)
	g.POST("", m.Handler.Create)
	g.DELETE("/:id", m.Handler.Delete)
	g.POST("/:id/join", m.Handler.Join)
	g.POST("/:id/leave", m.Handler.Leave)
}
