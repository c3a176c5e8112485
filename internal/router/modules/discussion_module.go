package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/digitalhub/internal/interface/http"
)

type DiscussionModule struct {
	Handler *handlers.DiscussionHandler
}

func NewDiscussionModule(h *handlers.DiscussionHandler) *DiscussionModule {
	return &DiscussionModule{Handler: h}
}

func (m *DiscussionModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/discussions")
	g.POST("/refresh", m.Handler.Refresh)
	g.GET("", m.Handler.List)
	g.DELETE("/error", m.Handler.ClearError)
	g.POST("", m.Handler.Create) // anonymous posts allowed
	g.DELETE("/:id", m.Handler.Delete)
}
