package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/response"
)

// AuditWriter persists audit rows.
type AuditWriter interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// Audit records an audit row after every successful mutation on resource. The action is derived from
// the HTTP method.
func Audit(writer AuditWriter, resource string, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now().UTC()
		c.Next()

		action, ok := models.AuditActionForMethod(c.Request.Method)
		if !ok || c.Writer.Status() >= 400 {
			return
		}

		entry := &models.AuditLog{
			Action:    action,
			Resource:  resource,
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
		}
		if claims, ok := Claims(c); ok {
			entry.UserID = &claims.UserID
		}
		if id := resourceID(c); id != "" {
			entry.ResourceID = &id
		}
		entry.NewValues, _ = json.Marshal(map[string]interface{}{
			"path":    c.FullPath(),
			"method":  c.Request.Method,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).Milliseconds(),
		})

		if err := writer.CreateAuditLog(c.Request.Context(), entry); err != nil {
			logger.Warn("failed to record audit log", zap.String("resource", resource), zap.Error(err))
		}
	}
}

func resourceID(c *gin.Context) string {
	if id := c.GetString(response.ResourceIDKey); id != "" {
		return id
	}
	return c.Param("id")
}
