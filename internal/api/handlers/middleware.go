package routes

import (
	"net/http"
	"time"

	"polystat/internal/logger"
	"polystat/internal/util"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestLoggerKey = "request_logger"

// RequestLogger tags every request with an id and logs it once it completes.
// Handlers get a logger carrying the id through RequestLog.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := util.RequestID(c.GetHeader(RequestIDHeader))
		reqLog := log.With("request_id", requestID)

		c.Set("request_id", requestID)
		c.Set(requestLoggerKey, reqLog)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			reqLog.Error("Request failed", append(fields, "errors", c.Errors.String())...)
			return
		}
		reqLog.Info("Request handled", fields...)
	}
}

// RequestLog returns the request-scoped logger, or fallback outside RequestLogger
func RequestLog(c *gin.Context, fallback *logger.Logger) *logger.Logger {
	if v, ok := c.Get(requestLoggerKey); ok {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return fallback
}
