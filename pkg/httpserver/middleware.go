package httpserver

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminPasswordHeader carries the caller-supplied administrative credential.
const AdminPasswordHeader = "X-Admin-Password"

// RequestLogger creates a gin middleware for request/response logging.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("client_addr", c.ClientIP()),
		}

		if status >= http.StatusInternalServerError {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
			logger.Error("HTTP request failed", fields...)
		} else {
			logger.Info("HTTP request completed", fields...)
		}
	}
}

// AdminGate rejects requests whose admin-password header does not match the
// configured value. This is deployment glue for the dashboard's admin page,
// not an access-control boundary.
func AdminGate(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(AdminPasswordHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(password)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "administrator access required"})
			return
		}
		c.Next()
	}
}
