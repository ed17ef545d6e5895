package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func serveHealth(t *testing.T, h *HealthHandler) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		body := serveHealth(t, NewHealthHandler("registry-backend", "1.0.0", nil))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "disabled", body.DB)
		assert.Equal(t, "1.0.0", body.Version)
	})

	t.Run("database up", func(t *testing.T) {
		h := &HealthHandler{serviceName: "registry-backend", db: stubPinger{}}
		body := serveHealth(t, h)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "up", body.DB)
	})

	t.Run("database down", func(t *testing.T) {
		h := &HealthHandler{serviceName: "registry-backend", db: stubPinger{err: errors.New("refused")}}
		body := serveHealth(t, h)
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "down", body.DB)
	})
}
