package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	routes "polystat/internal/api/handlers"
	"polystat/internal/command"
	"polystat/internal/config"
	"polystat/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Set Gin to test mode to reduce noise
	gin.SetMode(gin.TestMode)
}

const testPolygons = "3 (0;0) (4;0) (0;3)\n" +
	"4 (0;0) (1;0) (1;1) (0;1)\n" +
	"2 (0;0) (1;1)\n"

func setupTestRouter() *gin.Engine {
	r := gin.New()
	SetupRouter(r, config.Config{Port: ":8080"}, logger.Nop())
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Info(t *testing.T) {
	r := setupTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, routes.ServiceName, resp["service"])
	assert.Equal(t, ":8080", resp["port"])
	assert.NotEmpty(t, w.Header().Get(routes.RequestIDHeader))
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	r := setupTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(routes.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(routes.RequestIDHeader))
}

func TestRouter_Query(t *testing.T) {
	r := setupTestRouter()

	w := postJSON(t, r, "/api/query", routes.QueryRequest{Polygons: testPolygons, Command: "AREA ODD"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp routes.QueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "6.0", resp.Result)
	assert.Equal(t, 2, resp.Polygons)
	assert.Equal(t, 1, resp.Skipped)
}

func TestRouter_QueryVertexCount(t *testing.T) {
	r := setupTestRouter()

	w := postJSON(t, r, "/api/query", routes.QueryRequest{Polygons: testPolygons, Command: "MAX VERTEXES"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp routes.QueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4", resp.Result)
}

func TestRouter_QueryInvalid(t *testing.T) {
	r := setupTestRouter()

	for _, cmd := range []string{"AREA 2", "NOPE"} {
		w := postJSON(t, r, "/api/query", routes.QueryRequest{Polygons: testPolygons, Command: cmd})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, cmd)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, command.InvalidCommandMessage, resp["error"])
	}

	// Mean over an empty collection
	w := postJSON(t, r, "/api/query", routes.QueryRequest{Polygons: "", Command: "AREA MEAN"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_QueryBadBody(t *testing.T) {
	r := setupTestRouter()

	req, _ := http.NewRequest(http.MethodPost, "/api/query", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/query", map[string]string{"polygons": testPolygons})
	assert.Equal(t, http.StatusBadRequest, w.Code, "command is required")
}

func TestRouter_BodyTooLarge(t *testing.T) {
	r := setupTestRouter()

	oversized := strings.Repeat(" ", routes.MaxBodyBytes+1)

	w := postJSON(t, r, "/api/query", routes.QueryRequest{Polygons: oversized, Command: "AREA EVEN"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	req, _ := http.NewRequest(http.MethodPost, "/api/report", strings.NewReader(oversized))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRouter_Report(t *testing.T) {
	r := setupTestRouter()

	req, _ := http.NewRequest(http.MethodPost, "/api/report", strings.NewReader(testPolygons))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp routes.ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Summary.Polygons)
	assert.Equal(t, 1, resp.Skipped)
	assert.InDelta(t, 7.0, resp.Summary.TotalArea, 1e-9)
	require.NotNil(t, resp.Summary.MinVertexes)
	assert.Equal(t, 3, *resp.Summary.MinVertexes)
}

func TestRouter_ReportYAML(t *testing.T) {
	r := setupTestRouter()

	req, _ := http.NewRequest(http.MethodPost, "/api/report?format=yaml", strings.NewReader(testPolygons))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "polygons: 2")
}

func TestRouter_Metrics(t *testing.T) {
	r := setupTestRouter()
	postJSON(t, r, "/api/query", routes.QueryRequest{Polygons: testPolygons, Command: "AREA EVEN"})

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "polystat_commands_total")
	assert.Contains(t, w.Body.String(), "polystat_records_skipped_total")
}
