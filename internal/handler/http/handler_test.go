package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/authz"
	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	enforcer, err := authz.NewEnforcer(nil)
	require.NoError(t, err)
	log := logger.Nop()
	cfg := &config.StructuredConfig{
		App:    config.App{SessionDuration: time.Hour},
		Server: config.Server{StaticDir: "/srv/www"},
	}

	h := NewHandler(svcs, enforcer, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, enforcer, h.enforcer)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "/srv/www", h.cfg.StaticDir)
	assert.Equal(t, cfg.App.SessionDuration, h.sessionDuration)
	assert.NotNil(t, h.traceIDs)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
}

// protectedRoutes answer 401 without an identity, which proves the route
// exists.
var protectedRoutes = []routeCase{
	{http.MethodGet, "/api/users/mypage"},
	{http.MethodPatch, "/api/users/mypage"},
	{http.MethodPatch, "/api/users/password"},
	{http.MethodDelete, "/api/users"},
	{http.MethodGet, "/api/bookmarks"},
	{http.MethodPost, "/api/bookmarks"},
	{http.MethodDelete, "/api/bookmarks/5"},
	{http.MethodGet, "/api/ratings"},
	{http.MethodPost, "/api/ratings"},
	{http.MethodPatch, "/api/ratings"},
	{http.MethodDelete, "/api/ratings"},
	{http.MethodDelete, "/api/ratings/5"},
	{http.MethodPost, "/api/parking-lots/recommendations/nearby"},
	{http.MethodPost, "/api/parking-lots/recommendations/destination"},
	{http.MethodGet, "/admin/api/users"},
	{http.MethodGet, "/admin/api/users/search"},
	{http.MethodDelete, "/admin/api/users/1"},
	{http.MethodGet, "/admin/api/parking-lots"},
	{http.MethodGet, "/admin/api/parking-lots/search"},
	{http.MethodPost, "/admin/api/parking-lots"},
	{http.MethodPatch, "/admin/api/parking-lots"},
	{http.MethodDelete, "/admin/api/parking-lots/1"},
	{http.MethodPost, "/admin/api/parking-lots/scores"},
	{http.MethodGet, "/admin/api/ratings"},
	{http.MethodGet, "/admin/api/ratings/search"},
	{http.MethodDelete, "/admin/api/ratings/1"},
}

func TestInit_ProtectedRoutesRequireIdentity(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, tc.method, tc.path, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "login required", env.Message)
		})
	}
}

func TestInit_AdminRoutesRejectRegularUser(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, tc := range protectedRoutes {
		if len(tc.path) < 10 || tc.path[:10] != "/admin/api" {
			continue
		}
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, tc.method, tc.path, "", "kim@parking.kr")

			assert.Equal(t, http.StatusForbidden, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "admin only", env.Message)
		})
	}
}

func TestInit_VersionIsPublic(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := serve(h, http.MethodGet, "/api/version", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	info := decodeData[map[string]string](t, env)
	assert.Equal(t, "test-version", info["version"])
}

func TestInit_UnknownRouteReturnsEnvelope404(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := serve(h, http.MethodGet, "/api/nonexistent", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "not found", env.Message)
	assert.Equal(t, "null", string(env.Data))
}

func TestInit_WrongMethodReturnsEnvelope404(t *testing.T) {
	h := newTestHandler(t, nil)

	// only GET is registered
	rec := serve(h, http.MethodPost, "/api/version", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	decodeEnvelope(t, rec)
}

func TestInit_Metrics(t *testing.T) {
	h := newTestHandler(t, nil)

	serve(h, http.MethodGet, "/api/version", "", "")
	rec := serve(h, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "parking_mate_api_requests_total")
}

func TestInit_TraceIDHeaderOnEveryResponse(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := serve(h, http.MethodGet, "/nowhere", "", "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_LoginRateLimit(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	h.cfg.LoginRateLimit = 2

	router := h.Init()
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := serveWith(router, http.MethodPost, "/api/users/login", "{invalid", "")
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusBadRequest, http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

func TestInit_CORSPreflight(t *testing.T) {
	h := newTestHandler(t, nil)
	h.cfg.CORSAllowedOrigins = []string{"http://localhost:5173"}

	req := newRequest(http.MethodOptions, "/api/parking-lots", "")
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := recordWith(h.Init(), req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
