package http

import (
	"net/http"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	if _, err := h.services.AuthService.Register(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusCreated, "registration completed", nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	if h.services.AuthService.SessionsEnabled() {
		token, err := h.services.AuthService.CreateToken(ctx, user)
		if err != nil {
			log.Err(err).Msg("creation of token failed")
			writeError(w, r, err)
			return
		}
		http.SetCookie(w, h.sessionCookie(token.SignedString, int(h.sessionDuration.Seconds())))
	}

	utils.WriteEnvelope(w, http.StatusOK, "login succeeded", models.LoginResult{
		Email:           user.Email,
		Nickname:        user.Nickname,
		PreferredFactor: user.PreferredFactor,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	utils.WriteEnvelope(w, http.StatusOK, "logged out", nil)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	profile, err := h.services.UserService.GetProfile(r.Context(), user.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "profile loaded", profile.Profile())
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	var update models.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateProfile(ctx, user.Email, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "profile updated", updated.Profile())
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	var req models.PasswordChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.ChangePassword(ctx, user.Email, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "password changed", nil)
}

func (h *Handler) deleteSelf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	if err := h.services.UserService.DeleteUser(ctx, user.Email); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.ID).Msg("account deleted")
	http.SetCookie(w, h.sessionCookie("", -1))
	utils.WriteEnvelope(w, http.StatusOK, "account deleted", nil)
}

// sessionCookie builds the session cookie. A negative maxAge expires it.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
