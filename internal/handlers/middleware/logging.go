package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/docrepo-backend/internal/domain/ports"
)

// RequestIDHeader é devolvido em todas as respostas
const RequestIDHeader = "X-Request-ID"

// RequestLogger registra cada requisição com latência, status e usuário
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		args := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if identity := CurrentSession(c); identity != nil {
			args = append(args, "user_id", identity.UserID)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("http request", args...)
		case status >= 400:
			logger.Warn("http request", args...)
		default:
			logger.Info("http request", args...)
		}
	}
}
