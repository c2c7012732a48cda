package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvsql/vvsql/pkg/adapters/duckdb"
	"github.com/vvsql/vvsql/pkg/tableio"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(Config{
		Addr:       ":0",
		CORSOrigin: "*",
		Registry:   tableio.NewRegistry(duckdb.New()),
		Reader:     "duckdb://memory",
		Version:    "test",
	})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "test", body.Version)
}

func TestHandleVersion(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body versionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Features, "duckdb")
}

func TestHandleParse_ValidQuery(t *testing.T) {
	s := newTestServer(t)
	body := `{"query": "SELECT 1 AS x, 2 AS y VISUALISE AS PLOT WITH point USING x=x, y=y"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp apiSuccess
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
}

func TestHandleParse_MalformedBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleQuery_EndToEnd(t *testing.T) {
	s := newTestServer(t)
	query := `SELECT * FROM (VALUES (1, 10), (2, 20)) AS t(x, y) ` +
		`VISUALISE AS PLOT WITH line USING x=x, y=y`
	reqBody, err := json.Marshal(queryRequest{Query: query})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", strings.NewReader(string(reqBody)))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var resp struct {
		Status string      `json:"status"`
		Data   queryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Data.Metadata.Rows)
	assert.Equal(t, "PLOT", resp.Data.Metadata.VizType)
}

func TestHandleQuery_NoVisualiseClauseIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	reqBody, err := json.Marshal(queryRequest{Query: "SELECT 1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", strings.NewReader(string(reqBody)))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ModelError", resp.Error.Type)
}
