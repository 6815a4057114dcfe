package middleware

import (
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if userID := c.GetString(string(domain.KeyUserID)); userID != "" {
			fields = append(fields, "user_id", userID)
		}

		switch {
		case status >= 500:
			logger.Log.Errorw("request", fields...)
		case status >= 400:
			logger.Log.Warnw("request", fields...)
		default:
			logger.Log.Infow("request", fields...)
		}
	}
}
