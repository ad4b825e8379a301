package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"polystat/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestRequestLogger_TagsRequestLogs(t *testing.T) {
	log, logs := observedLogger()

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ok", func(c *gin.Context) {
		RequestLog(c, nil).Debug("Inside handler")
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Inside handler", entries[0].Message)
	assert.Equal(t, "Request handled", entries[1].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	for _, e := range entries {
		assert.Equal(t, "req-7", e.ContextMap()["request_id"])
	}
}

func TestRequestLogger_ServerErrorLoggedAsError(t *testing.T) {
	log, logs := observedLogger()

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/fail", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("Request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.EqualValues(t, http.StatusInternalServerError, entries[0].ContextMap()["status"])
}

func TestRequestLog_Fallback(t *testing.T) {
	fallback := logger.Nop()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, fallback, RequestLog(c, fallback))
}
