package handlers

import (
	"net/http"

	"github.com/pickem-crew/pickem-dashboard/internal/apperrors"
	"github.com/pickem-crew/pickem-dashboard/internal/responses"
)

// HandleLeaderboard loads the season standings for the leaderboard page
func (h *HandlerService) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r)
	if !ok {
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	season := r.URL.Query().Get("season")
	if season == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidURLParam, "season is required")
		return
	}

	res := h.Backend.Leaderboard(r.Context(), token, season)
	if !res.OK {
		h.respondRequestError(w, r, res.Err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, res.Data)
}
