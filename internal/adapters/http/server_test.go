package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/aretw0/verdict/internal/adapters/http"
	rediscache "github.com/aretw0/verdict/internal/adapters/redis"
	backend "github.com/redis/go-redis/v9"
)

func post(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	handler := httpAdapter.NewHandler()

	rec := post(t, handler, "/analyze", map[string]any{
		"values": []string{"A", "A", "B", "B"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []struct {
			ID      int   `json:"id"`
			Order   []int `json:"order"`
			Score   int   `json:"score"`
			Optimal bool  `json:"optimal"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	for _, r := range resp.Results {
		assert.Equal(t, 2, r.Score)
		assert.True(t, r.Optimal)
	}
	assert.Equal(t, 1, resp.Results[0].ID)
}

func TestAnalyzeEndpoint_InvalidSize(t *testing.T) {
	handler := httpAdapter.NewHandler()

	rec := post(t, handler, "/analyze", map[string]any{
		"values": []string{"A", "B", "C"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "3")
}

func TestCodeEndpoint(t *testing.T) {
	handler := httpAdapter.NewHandler()

	rec := post(t, handler, "/code", map[string]any{
		"values": []string{"X", "Y", "Y", "Y"},
		"name":   "match",
		"params": []string{"a", "b"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["code"], "function match(a, b) {")
	assert.Contains(t, resp["code"], "if (a && b) {")
}

func TestFlowchartEndpoint(t *testing.T) {
	handler := httpAdapter.NewHandler()

	rec := post(t, handler, "/flowchart", map[string]any{
		"values": []string{"X", "Y", "Y", "Y"},
		"params": []string{"a", "b"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["flowchart"], "graph TD")
	assert.Contains(t, resp["flowchart"], `{"a && b"}`)
}

func TestRenderCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := rediscache.NewFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}))
	handler := httpAdapter.NewHandler(httpAdapter.WithCache(cache))

	body := map[string]any{"values": []string{"A", "A", "B", "B"}, "params": []string{"a", "b"}}

	first := post(t, handler, "/code", body)
	require.Equal(t, http.StatusOK, first.Code)
	require.NotZero(t, len(mr.Keys()), "render was not cached")

	second := post(t, handler, "/code", body)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHealthz(t *testing.T) {
	handler := httpAdapter.NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, "ok", string(body))
}

func TestMetricsExposed(t *testing.T) {
	handler := httpAdapter.NewHandler()

	// Drive one request so the counter exists.
	post(t, handler, "/analyze", map[string]any{"values": []string{"A", "B"}})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "verdict_requests_total")
}
