package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/feedback-hub/internal/metrics"
)

// RequestLogger logs every request with zerolog and records it in the
// HTTP metrics. The logger is also attached to the request context.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLog := log.With().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		dur := time.Since(start)

		metrics.ObserveHTTP(route, c.Request.Method, status, dur)

		ev := reqLog.Info()
		if status >= 500 {
			ev = reqLog.Error()
		} else if status >= 400 {
			ev = reqLog.Warn()
		}
		ev.Str("route", route).
			Int("status", status).
			Dur("duration", dur).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}
