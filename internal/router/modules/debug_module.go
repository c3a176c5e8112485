package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/digitalhub/internal/container"
	"github.com/oksasatya/digitalhub/internal/interface/middleware"
)

type DebugModule struct {
	Sessions middleware.SessionSource
}

func NewDebugModule(sessions middleware.SessionSource) *DebugModule {
	return &DebugModule{Sessions: sessions}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar, rate-limited per IP; admins are not limited
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowAdminSession(m.Sessions))
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
