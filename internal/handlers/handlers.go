// Package handlers contains the dashboard's HTTP handlers. The page-facing
// data loaders are thin: they read the session from context, call the backend
// through the typed client, and translate the result envelope into a JSON
// response. A failed envelope is always rendered as a visible error state,
// never a panic.
package handlers

import (
	"net/http"

	"github.com/pickem-crew/pickem-dashboard/internal/apperrors"
	"github.com/pickem-crew/pickem-dashboard/internal/auth"
	"github.com/pickem-crew/pickem-dashboard/internal/backend"
	"github.com/pickem-crew/pickem-dashboard/internal/responses"
)

type HandlerService struct {
	AuthService *auth.AuthService
	Backend     *backend.Client
	Environment string
}

// respondRequestError maps a backend request error onto the dashboard's own
// error response. Backend failures surface as 502 so the dashboard's own 5xx
// space stays meaningful; auth statuses pass through.
func (h *HandlerService) respondRequestError(w http.ResponseWriter, r *http.Request, reqErr *backend.RequestError) {
	var status int
	var code apperrors.ErrorCode

	switch {
	case reqErr.Status == 0:
		status = http.StatusBadGateway
		code = apperrors.ErrCodeBackendUnavailable
	case reqErr.Status == http.StatusUnauthorized:
		status = http.StatusUnauthorized
		code = apperrors.ErrCodeAuthenticationFailure
	case reqErr.Status == http.StatusForbidden:
		status = http.StatusForbidden
		code = apperrors.ErrCodeForbidden
	case reqErr.Status == http.StatusNotFound:
		status = http.StatusNotFound
		code = apperrors.ErrCodeResourceNotFound
	case reqErr.Status >= http.StatusInternalServerError:
		status = http.StatusBadGateway
		code = apperrors.ErrCodeBackendError
	default:
		status = http.StatusBadRequest
		code = apperrors.ErrCodeInvalidRequest
	}

	responses.RespondWithError(w, r, status, code, reqErr.UserMessage())
}

// sessionToken returns the bearer token for the authenticated request.
// RequireAuth guarantees the details are present; the false branch indicates a
// route wired without the middleware.
func sessionToken(r *http.Request) (string, bool) {
	details, ok := auth.ContextAccessTokenDetails(r.Context())
	if !ok {
		return "", false
	}
	return details.AccessToken, true
}
