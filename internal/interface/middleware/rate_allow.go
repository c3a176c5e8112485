package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP bypasses limiting for loopback and private-range clients.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		if parsed == nil {
			return false
		}
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}

// AllowAdminSession bypasses limiting when the host session is an admin.
func AllowAdminSession(sessions SessionSource) AllowFunc {
	return func(*gin.Context) bool {
		acc, ok := sessions.Current()
		return ok && acc.Role.CanViewDashboard()
	}
}
