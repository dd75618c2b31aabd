package middleware

import (
	"log/slog"
	"time"

	"agency-contact-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(response.RequestIDKey),
		)
	}
}
