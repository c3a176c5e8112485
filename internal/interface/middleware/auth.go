package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/pkg/response"
)

// SessionSource exposes the host's current identity.
type SessionSource interface {
	Current() (entity.Account, bool)
}

// RequireSession rejects requests while the host session is anonymous and
// stores the account under "account" for handlers.
func RequireSession(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc, ok := sessions.Current()
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "login required", nil)
			return
		}
		c.Set("account", acc)
		c.Next()
	}
}

// RequireDashboard only lets administrators through.
func RequireDashboard(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc, ok := sessions.Current()
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "login required", nil)
			return
		}
		if !acc.Role.CanViewDashboard() {
			response.Error[any](c, http.StatusForbidden, "administrators only", nil)
			return
		}
		c.Set("account", acc)
		c.Next()
	}
}
