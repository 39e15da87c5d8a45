package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pickem-crew/pickem-dashboard/internal/apperrors"
	"github.com/pickem-crew/pickem-dashboard/internal/backend"
	"github.com/pickem-crew/pickem-dashboard/internal/logger"
	"github.com/pickem-crew/pickem-dashboard/internal/responses"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expires_in"`
}

// HandleLoginPost authenticates the user against the backend and sets the
// authentication cookies on the response. The access token itself never
// reaches page scripts, it lives in an HttpOnly cookie.
func (h *HandlerService) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, "Invalid request. Please check your input and try again.")
		return
	}

	if req.Email == "" || req.Password == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest, "Please fill in all fields.")
		return
	}

	details, refreshTokenCookie, err := h.Backend.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		reqLogger.Error("authentication failed", slog.String("error", err.Error()))

		var reqErr *backend.RequestError
		if errors.As(err, &reqErr) {
			if reqErr.Status == http.StatusUnauthorized {
				responses.RespondWithError(w, r, http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, "Login failed. Please check your email and password and try again.")
				return
			}
			h.respondRequestError(w, r, reqErr)
			return
		}
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	if err := h.AuthService.SetAuthCookies(w, details, refreshTokenCookie); err != nil {
		reqLogger.Error("failed to set authentication cookies", slog.String("error", err.Error()))
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	// include the account in the final request log
	_ = logger.ContextWithLogAttrs(r.Context(),
		slog.String("account_id", details.AccountID),
	)

	responses.RespondWithJSON(w, http.StatusOK, loginResponse{
		AccountID: details.AccountID,
		Username:  details.Username,
		Role:      details.Role,
		ExpiresIn: details.ExpiresIn,
	})
}

// HandleLogout clears the authentication cookies. Local-only: the refresh
// token is invalidated by expiry on the backend side.
func (h *HandlerService) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.AuthService.ClearAuthCookies(w)
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}
