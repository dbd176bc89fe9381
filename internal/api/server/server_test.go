package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vidglobe/internal/api/v1/dto"
	v1routes "vidglobe/internal/api/v1/routes"
	"vidglobe/internal/app/testutil"
)

func newTestServer(t *testing.T) (*Server, *testutil.MockServices) {
	mocks := testutil.NewMockServices(t)
	container := &v1routes.ServiceContainer{
		VideoService:  mocks.VideoService,
		ChatService:   mocks.ChatService,
		ExportService: mocks.ExportService,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewServer(Config{Host: "127.0.0.1", Port: "0"}, container, prometheus.NewRegistry(), logger)
	return srv, mocks
}

func TestServer_HealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestServer_MetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_V1RoutesRegistered(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.VideoService.On("ListVideos", mock.Anything, mock.Anything).
		Return(&dto.PaginatedVideosResponse{Videos: []dto.VideoResponse{}}, nil)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_RequestIDPropagated(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
