package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/authz"
	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const testAdminEmail = "admin@parking.kr"

var testUser = models.User{ID: 1, Email: "kim@parking.kr", Nickname: "kim", PreferredFactor: models.FactorFee}

// newTestHandler builds a Handler around svcs. Missing AuthService and
// AppInfoService are filled with mocks that resolve X-User-Email to a user
// with that email.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = headerAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}

	enforcer, err := authz.NewEnforcer([]string{testAdminEmail})
	require.NoError(t, err)

	return NewHandler(svcs, enforcer, &config.StructuredConfig{}, logger.Nop())
}

// headerAuth resolves any non-empty X-User-Email to a user with that email.
func headerAuth() *mockAuthService {
	return &mockAuthService{
		identifyFn: func(_ context.Context, headerEmail, _ string) (models.User, error) {
			if headerEmail == "" {
				return models.User{}, service.ErrUnauthenticated
			}
			u := testUser
			u.Email = headerEmail
			return u, nil
		},
	}
}

// serve sends a request through the full router.
func serve(h *Handler, method, path, body, email string) *httptest.ResponseRecorder {
	return serveWith(h.Init(), method, path, body, email)
}

// withUser attaches user to the request the way identify does.
func withUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}

type testEnvelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	require.Equal(t, rec.Code, env.Status, "envelope status must mirror the HTTP status")
	return env
}

func decodeData[T any](t *testing.T, env testEnvelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func newRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func recordWith(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// serveWith is serve for a router built once and reused across requests.
func serveWith(router http.Handler, method, path, body, email string) *httptest.ResponseRecorder {
	req := newRequest(method, path, body)
	if email != "" {
		req.Header.Set(identityHeader, email)
	}
	return recordWith(router, req)
}
