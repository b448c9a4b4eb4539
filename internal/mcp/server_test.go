package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewHandler(zap.NewNop(), 1<<10))
	t.Cleanup(srv.Close)
	return srv
}

func TestToolEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"tool":"simplify","params":{"expr":"(x+1)(x-1)"}}`
	resp, err := http.Post(srv.URL+"/tool", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, err = uuid.Parse(resp.Header.Get("X-Request-Id"))
	assert.NoError(t, err)

	var out ToolResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Empty(t, out.Error)
	assert.Equal(t, "x^2-1", out.String)
}

func TestToolEndpointNumbers(t *testing.T) {
	srv := newTestServer(t)

	tests := map[string]string{
		`{"tool":"multiply","params":{"a":{"type":"term","coefficient":0.1},"b":"x"}}`: "1/10*x",
		`{"tool":"multiply","params":{"a":0.3,"b":"x"}}`:                               "3/10*x",
		`{"tool":"power","params":{"base":"x+1","exponent":2}}`:                        "x^2+2x+1",
	}
	for body, want := range tests {
		resp, err := http.Post(srv.URL+"/tool", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		var out ToolResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		resp.Body.Close()
		assert.Empty(t, out.Error, body)
		assert.Equal(t, want, out.String, body)
	}
}

func TestToolEndpointRejects(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/tool")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	for _, body := range []string{
		`{"tool":"simplify","params":{"expr":"x"},"extra":1}`,
		`{"tool":"simplify"} {}`,
		`not json`,
		`{"tool":"simplify","params":{"expr":"` + strings.Repeat("x+", 1<<10) + `x"}}`,
	} {
		resp, err := http.Post(srv.URL+"/tool", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body[:min(len(body), 40)])
	}
}

func TestSchemaAndHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/schema")
	require.NoError(t, err)
	defer resp.Body.Close()
	var schema map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schema))
	assert.Contains(t, schema, "tools")

	health, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer health.Body.Close()
	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(health.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
}
