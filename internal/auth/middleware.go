package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/pickem-crew/pickem-dashboard/internal/apperrors"
	"github.com/pickem-crew/pickem-dashboard/internal/config"
	"github.com/pickem-crew/pickem-dashboard/internal/logger"
	"github.com/pickem-crew/pickem-dashboard/internal/responses"
)

// RequireAuth is middleware that checks authentication and attempts token
// refresh if needed.
//
// This middleware ensures that:
//  1. All requests carry a valid session (rejected or redirected to login if not)
//  2. Expired tokens are automatically refreshed when possible
//  3. Fresh cookies are set after token refresh for subsequent requests
//
// The decoded access token details are stored in the request context for
// handlers.
func (a *AuthService) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.ContextRequestLogger(r.Context())

		details, err := a.SessionFromRequest(r)
		if err != nil {
			reqLogger.Debug("authentication failed - no session",
				slog.String("component", "auth.RequireAuth"),
			)
			rejectUnauthenticated(w, r)
			return
		}

		switch status := a.CheckAccessTokenStatus(details); status {
		case TokenValid:
			ctx := ContextWithAccessTokenDetails(r.Context(), details)
			next.ServeHTTP(w, r.WithContext(ctx))
			return

		case TokenMissing, TokenInvalid:
			reqLogger.Debug("authentication failed",
				slog.String("component", "auth.RequireAuth"),
				slog.String("status", status.String()),
			)
			rejectUnauthenticated(w, r)
			return

		case TokenExpired:
			refreshTokenCookie, err := r.Cookie(config.RefreshTokenCookieName)
			if err != nil {
				reqLogger.Debug("token expired and no refresh token cookie",
					slog.String("component", "auth.RequireAuth"),
				)
				rejectUnauthenticated(w, r)
				return
			}

			freshDetails, newRefreshTokenCookie, err := a.backend.RefreshToken(r.Context(), refreshTokenCookie)
			if err != nil {
				reqLogger.Error("token refresh failed",
					slog.String("component", "auth.RequireAuth"),
					slog.String("error", err.Error()),
				)
				rejectUnauthenticated(w, r)
				return
			}

			if err := a.SetAuthCookies(w, freshDetails, newRefreshTokenCookie); err != nil {
				reqLogger.Error("failed to set authentication cookies after refresh",
					slog.String("component", "auth.RequireAuth"),
					slog.String("error", err.Error()),
				)
				rejectUnauthenticated(w, r)
				return
			}

			reqLogger.Debug("token refresh successful",
				slog.String("component", "auth.RequireAuth"),
			)

			ctx := ContextWithAccessTokenDetails(r.Context(), freshDetails)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	})
}

// RequireCommissioner is middleware that restricts a route to commissioner
// accounts (pick grading, batch admin operations).
func (a *AuthService) RequireCommissioner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.ContextRequestLogger(r.Context())

		details, ok := ContextAccessTokenDetails(r.Context())
		if !ok {
			reqLogger.Error("access token details not found in context - RequireCommissioner must run after RequireAuth",
				slog.String("component", "auth.RequireCommissioner"),
			)
			responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
			return
		}

		if details.Role != "commissioner" {
			reqLogger.Debug("access denied - account attempted to access a commissioner feature",
				slog.String("component", "auth.RequireCommissioner"),
				slog.String("account_id", details.AccountID),
				slog.String("role", details.Role),
			)
			responses.RespondWithError(w, r, http.StatusForbidden, apperrors.ErrCodeForbidden, "You don't have permission to access this resource.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rejectUnauthenticated returns 401 for data-loader requests and redirects
// page requests to the login screen.
func rejectUnauthenticated(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/ui-api/") {
		responses.RespondWithError(w, r, http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, "Your session is no longer valid. Please log in again.")
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
