package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventHTTP "github-activity/internal/event/delivery/http"
	"github-activity/internal/event/repository/memory"
	"github-activity/internal/event/usecase"
	"github-activity/internal/httpserver"
	"github-activity/internal/middleware"
	"github-activity/internal/webhook"
	"github-activity/pkg/log"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	return newServerWithReadiness(t, nil)
}

func newServerWithReadiness(t *testing.T, ready httpserver.ReadinessFunc) http.Handler {
	t.Helper()
	l := log.NewNop()
	uc := usecase.New(memory.New(), l)

	srv, err := httpserver.New(l, httpserver.Config{
		Port:         8080,
		Mode:         "test",
		Environment:  "development",
		EventHandler: eventHTTP.New(l, uc),
		Middleware:   middleware.New(l, webhook.NewSecurityValidator(webhook.SecurityConfig{})),
		Readiness:    ready,
	})
	require.NoError(t, err)
	return srv.Handler()
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRoot(t *testing.T) {
	w := get(newServer(t), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, httpserver.RootMessage, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestHealthRoutes(t *testing.T) {
	h := newServer(t)
	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		w := get(h, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"status":"`+status+`"`, path)
	}
}

func TestReadyCheck_StoreDown(t *testing.T) {
	h := newServerWithReadiness(t, func(context.Context) error { return errors.New("no reachable servers") })

	w := get(h, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"not ready"`)

	assert.Equal(t, http.StatusOK, get(h, "/live").Code)
}

func TestDashboard(t *testing.T) {
	h := newServer(t)

	w := get(h, "/ui")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="events-container"`)

	w = get(h, "/static/script.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `fetch("/events")`))
}

func TestEventRoutesRegistered(t *testing.T) {
	h := newServer(t)

	w := get(h, "/events")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/webhook/receiver", strings.NewReader(""))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNew_Validation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 8080, Mode: "test"})
	assert.ErrorContains(t, err, "event handler is required")

	_, err = httpserver.New(nil, httpserver.Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)
}
