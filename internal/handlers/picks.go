package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pickem-crew/pickem-dashboard/internal/apperrors"
	"github.com/pickem-crew/pickem-dashboard/internal/backend"
	"github.com/pickem-crew/pickem-dashboard/internal/responses"
)

// HandleListPicks loads the authenticated user's picks, filterable by season,
// week and status query parameters
func (h *HandlerService) HandleListPicks(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r)
	if !ok {
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	q := r.URL.Query()
	filter := backend.PickFilter{
		Season: q.Get("season"),
		Week:   q.Get("week"),
		Status: q.Get("status"),
	}

	res := h.Backend.Picks(r.Context(), token, filter)
	if !res.OK {
		h.respondRequestError(w, r, res.Err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, res.Data)
}

// HandleSubmitPick submits a new pick for the authenticated user
func (h *HandlerService) HandleSubmitPick(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r)
	if !ok {
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	var submission backend.PickSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, "Invalid request. Please check your input and try again.")
		return
	}

	if submission.GameID == "" || submission.Selection == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest, "game_id and selection are required")
		return
	}

	res := h.Backend.SubmitPick(r.Context(), token, submission)
	if !res.OK {
		h.respondRequestError(w, r, res.Err)
		return
	}

	responses.RespondWithJSON(w, http.StatusCreated, res.Data)
}
