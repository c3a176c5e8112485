package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/digitalhub/internal/container"
	handlers "github.com/oksasatya/digitalhub/internal/interface/http"
	"github.com/oksasatya/digitalhub/internal/interface/middleware"
)

// SessionModule routes: GET /session, POST /login, POST /register,
// POST /logout, DELETE /session/error.
type SessionModule struct {
	Handler *handlers.SessionHandler
}

func NewSessionModule(h *handlers.SessionHandler) *SessionModule {
	return &SessionModule{Handler: h}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/session", m.Handler.Get)
	rg.DELETE("/session/error", m.Handler.ClearError)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/register", loginLimiter, m.Handler.Register)
	rg.POST("/logout", m.Handler.Logout)
}
