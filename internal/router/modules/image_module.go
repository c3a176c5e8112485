package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/digitalhub/internal/container"
	handlers "github.com/oksasatya/digitalhub/internal/interface/http"
	"github.com/oksasatya/digitalhub/internal/interface/middleware"
)

type ImageModule struct {
	Handler *handlers.ImageHandler
}

func NewImageModule(h *handlers.ImageHandler) *ImageModule {
	return &ImageModule{Handler: h}
}

func (m *ImageModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.POST("/images", rl, m.Handler.Upload)
}
