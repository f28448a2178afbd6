package middleware

import (
	"net"

	"github.com/gin-gonic/gin"

	"weekly-agenda/pkg/response"
)

// LocalOnly rejects requests that do not originate from loopback. The API
// exists for the local UI shell; nothing else should reach it even if the
// listener is misconfigured onto a routable interface.
func (m Middleware) LocalOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			host = c.Request.RemoteAddr
		}

		ip := net.ParseIP(host)
		if ip == nil || !ip.IsLoopback() {
			m.l.Warnf(c.Request.Context(), "rejected non-loopback request from %s", c.Request.RemoteAddr)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
