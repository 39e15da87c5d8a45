package handlers

import (
	"net/http"

	"github.com/pickem-crew/pickem-dashboard/internal/apperrors"
	"github.com/pickem-crew/pickem-dashboard/internal/responses"
)

// HandleROITrends loads the per-week ROI series for the analytics page
func (h *HandlerService) HandleROITrends(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r)
	if !ok {
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	res := h.Backend.ROITrends(r.Context(), token)
	if !res.OK {
		h.respondRequestError(w, r, res.Err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, res.Data)
}

// HandleStreakLeaders loads the win streak standings for the analytics page
func (h *HandlerService) HandleStreakLeaders(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r)
	if !ok {
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	res := h.Backend.StreakLeaders(r.Context(), token)
	if !res.OK {
		h.respondRequestError(w, r, res.Err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, res.Data)
}
