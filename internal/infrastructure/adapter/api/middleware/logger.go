package middleware

import (
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs every served request; server errors at error level
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":      c.Request.Method,
			"path":        path,
			"route":       c.FullPath(),
			"status":      statusCode,
			"latency_ms":  timeProvider.Since(start).Std().Milliseconds(),
			"ip":          c.ClientIP(),
			"request_id":  GetRequestID(c),
			"user_agent":  c.Request.UserAgent(),
			"bytes":       c.Writer.Size(),
			"status_text": statusText(statusCode),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		if statusCode >= 500 {
			logger.Error("Request processed", fields)
			return
		}
		logger.Info("Request processed", fields)
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
