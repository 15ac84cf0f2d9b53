package middleware

import (
	"strconv"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// HTTPObserver records served requests
type HTTPObserver interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

// unmatchedRoute labels requests that hit no registered route
const unmatchedRoute = "unmatched"

// Metrics middleware observes request latency by route template, never by raw path
func Metrics(observer HTTPObserver, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		observer.ObserveHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			timeProvider.Since(start).Seconds(),
		)
	}
}
