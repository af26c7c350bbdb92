package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// RequestLogger logs one line per request and records request metrics.
func RequestLogger(logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		took := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.ObserveHTTPRequest(c.Request.Method, route, status, took)

		switch {
		case status >= 500:
			logger.Errorf("%s %s -> %d (%s) %s", c.Request.Method, c.Request.URL.Path, status, took, c.Errors.String())
		case status >= 400:
			logger.Warnf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, took)
		default:
			logger.Infof("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, took)
		}
	}
}
