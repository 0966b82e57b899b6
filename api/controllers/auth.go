package controllers

import (
	"net/http"

	"github.com/northhaul/northhaul-backend/api/middleware"
	"github.com/northhaul/northhaul-backend/api/responses"
	"github.com/northhaul/northhaul-backend/api/validators"
	"github.com/northhaul/northhaul-backend/internal/auth"
	"github.com/northhaul/northhaul-backend/pkg/config"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
	"github.com/northhaul/northhaul-backend/pkg/logger"
)

// AdminLogin authenticates an admin and sets the session cookie. The
// response body never includes the credential hash.
func AdminLogin(svc auth.Service, cfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cfg.CookieName,
			Value:    result.SessionID,
			Path:     "/",
			MaxAge:   int(cfg.TTL.Seconds()),
			HttpOnly: true,
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})

		responses.WriteSuccess(w, map[string]string{
			"id":       result.AdminID.String(),
			"username": result.Username,
		})
	}
}

// AdminLogout revokes the session and clears the cookie.
func AdminLogout(svc auth.Service, cfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if err := svc.Logout(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cfg.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})

		responses.WriteSuccess(w, map[string]string{"status": "logged out"})
	}
}
