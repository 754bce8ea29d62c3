package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger writes one entry per finished request. Catalog path
// parameters are lifted into their own fields so item and category traffic
// can be filtered without parsing paths.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
			"bytes_out":   c.Writer.Size(),
			"remote_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
			"latency_ms":  time.Since(start).Milliseconds(),
		}
		if reqID := c.GetString(RequestIDKey); reqID != "" {
			fields["request_id"] = reqID
		}
		if category := c.Param("category"); category != "" {
			fields["category"] = category
		}
		if itemID := c.Param("id"); itemID != "" {
			fields["item_id"] = itemID
		}
		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request served")
		}
	}
}
