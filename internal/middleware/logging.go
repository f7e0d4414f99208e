package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request. Health checks are skipped.
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		kv := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if userID := c.GetString(UserIDKey); userID != "" {
			kv = append(kv, "user_id", userID)
		}

		switch {
		case status >= 500:
			logger.Error("http request", kv...)
		case status >= 400:
			logger.Warn("http request", kv...)
		default:
			logger.Info("http request", kv...)
		}
	}
}
