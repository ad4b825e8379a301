package routes

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"polystat/internal/command"
	"polystat/internal/logger"
	"polystat/internal/metrics"
	"polystat/internal/parser"
	"polystat/internal/report"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps the size of a polygon list accepted over HTTP
const MaxBodyBytes = 8 << 20

// QueryRequest is the body of POST /api/query
type QueryRequest struct {
	Polygons string `json:"polygons"`
	Command  string `json:"command" binding:"required"`
}

// QueryResponse is the answer to a single command
type QueryResponse struct {
	Result   string `json:"result"`
	Polygons int    `json:"polygons"`
	Skipped  int    `json:"skipped"`
}

// ReportResponse wraps a summary with read statistics
type ReportResponse struct {
	Summary report.Summary `json:"summary"`
	Skipped int            `json:"skipped"`
}

type queryHandlers struct {
	log        *logger.Logger
	dispatcher *command.Dispatcher
}

// SetupQueryHandlers registers the polygon statistics endpoints
func SetupQueryHandlers(router *gin.RouterGroup, log *logger.Logger) {
	h := &queryHandlers{
		log:        log,
		dispatcher: command.NewDispatcher(),
	}

	router.POST("/query", h.Query)
	router.POST("/report", h.Report)
}

// Query parses the polygon list and answers one command
func (h *queryHandlers) Query(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(bodyErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	batch, err := parser.ReadPolygons(strings.NewReader(req.Polygons))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics.ObserveSkipped(len(batch.Skipped))

	var out bytes.Buffer
	if err := h.dispatcher.Execute(batch.Polygons, req.Command, &out); err != nil {
		RequestLog(c, h.log).Debug("Command rejected", "command", req.Command, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  command.InvalidCommandMessage,
			"detail": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, QueryResponse{
		Result:   strings.TrimSpace(out.String()),
		Polygons: len(batch.Polygons),
		Skipped:  len(batch.Skipped),
	})
}

// Report parses a raw polygon list from the body and returns every statistic.
// ?format=yaml switches the response encoding.
func (h *queryHandlers) Report(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	batch, err := parser.ReadPolygons(body)
	if err != nil {
		c.JSON(bodyErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	metrics.ObserveSkipped(len(batch.Skipped))

	resp := ReportResponse{
		Summary: report.Summarize(batch.Polygons),
		Skipped: len(batch.Skipped),
	}

	if c.Query("format") == report.FormatYAML {
		c.YAML(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bodyErrorStatus maps a body read failure to 413 when the size cap was hit
func bodyErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
