package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
)

// accessLog writes one line per request through the service logger.
func (srv HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			srv.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= 400:
			srv.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			srv.l.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
