package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	e := echo.New()
	RegisterHealthEndpoints(e, "dispatch-service")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "dispatch-service", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.False(t, info.ServerTime.IsZero())
}

func TestHealthEndpoint(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "dispatch-service")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestReadiness(t *testing.T) {
	healthy := CheckFunc{CheckName: "postgres", Fn: func(ctx context.Context) error { return nil }}
	broken := CheckFunc{CheckName: "redis", Fn: func(ctx context.Context) error { return errors.New("connection refused") }}

	tests := []struct {
		name     string
		checkers []Checker
		status   int
		deps     map[string]string
	}{
		{
			name:     "All dependencies up",
			checkers: []Checker{healthy},
			status:   http.StatusOK,
			deps:     map[string]string{"postgres": "ok"},
		},
		{
			name:     "One dependency down",
			checkers: []Checker{healthy, broken},
			status:   http.StatusServiceUnavailable,
			deps:     map[string]string{"postgres": "ok", "redis": "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			RegisterHealthEndpoints(e, "dispatch-service", tt.checkers...)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.status, rec.Code)
			var resp ReadinessResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.deps, resp.Dependencies)
		})
	}
}
