package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
)

const (
	identityHeader    = "X-User-Email"
	sessionCookieName = "session"
)

// identify resolves the caller from the X-User-Email header or the session
// cookie and stores the user in the request context under
// [utils.UserCtxKey]. Requests without a resolvable identity get a 401
// envelope.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var sessionToken string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sessionToken = cookie.Value
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Identify(ctx, r.Header.Get(identityHeader), sessionToken)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) {
				log.Err(err).Msg("identity resolution failed")
			}
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// adminOnly must run after identify. It asks the enforcer whether the
// caller may use the requested admin route and answers 403 otherwise.
//
// When session signing is configured the caller must also hold a valid
// session cookie for the same email: the X-User-Email header alone never
// reaches the admin api.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		if h.services.AuthService.SessionsEnabled() && !h.hasSessionFor(r, user.Email) {
			log.Warn().Str("email", user.Email).Str("path", r.URL.Path).Msg("admin api reached without a session")
			writeError(w, r, ErrAdminOnly)
			return
		}

		allowed, err := h.enforcer.IsAllowed(user.Email, r.URL.Path, r.Method)
		if err != nil {
			log.Err(err).Str("email", user.Email).Msg("admin authorization failed")
			writeError(w, r, err)
			return
		}
		if !allowed {
			log.Warn().Str("email", user.Email).Str("path", r.URL.Path).Msg("non-admin reached admin api")
			writeError(w, r, ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// hasSessionFor reports whether r carries a valid session cookie issued to
// email.
func (h *Handler) hasSessionFor(r *http.Request, email string) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), cookie.Value)
	if err != nil {
		return false
	}
	return token.Email == email
}
