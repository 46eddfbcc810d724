package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-gateway/internal/config"
	"poi-gateway/internal/server"
)

func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	return New(server.New(config.ServerConfig{Port: "0", Env: "test"}, &logger))
}

func do(t *testing.T, r http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUnknownPathReturns404Envelope(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/other?query=coffee")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "Not Found", errBody["type"])
}

func TestMethodMismatchReturns404Envelope(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodPost, "/pois")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errBody := decode(t, rec)["error"].(map[string]any)
	assert.Equal(t, "Not Found", errBody["type"])
}

func TestStatusEndpointWorksWithoutCredentials(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode(t, rec)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "poigw_requests_total")
}

func TestRequestIDRoundTrips(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	// And one is generated when absent.
	rec = do(t, r, http.MethodGet, "/status")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestPOIsWithoutCredentialsReturnsConfigurationError(t *testing.T) {
	// No POIGW_ credentials in the test environment: the lazy pipeline
	// build fails and is cached, so /pois answers 500 for any input,
	// valid or not, before validation runs.
	for _, name := range []string{"POIGW_NAVER_CLIENT_ID", "POIGW_NAVER_CLIENT_SECRET", "POIGW_KAKAO_REST_API_KEY"} {
		require.NoError(t, os.Unsetenv(name))
	}

	r := newTestRouter()
	rec := do(t, r, http.MethodGet, "/pois?minLat=37.5&minLng=127.0&maxLat=37.6&maxLng=127.1&query=coffee&category_group_code=CE7")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errBody := decode(t, rec)["error"].(map[string]any)
	assert.Equal(t, "Configuration Error", errBody["type"])
	assert.Equal(t, "The server is not configured correctly.", errBody["message"])

	// Same outcome on a second request: the failure is cached, not retried.
	rec = do(t, r, http.MethodGet, "/pois")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
