package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pickem-crew/pickem-dashboard/internal/apperrors"
	"github.com/pickem-crew/pickem-dashboard/internal/backend"
	"github.com/pickem-crew/pickem-dashboard/internal/logger"
	"github.com/pickem-crew/pickem-dashboard/internal/responses"
)

var validGradeResults = map[string]bool{
	"win":  true,
	"loss": true,
	"push": true,
}

// HandleBatchGrade forwards a batch of pick grades to the backend.
// Route is restricted to commissioners by RequireCommissioner; the backend
// re-checks the role on its side.
func (h *HandlerService) HandleBatchGrade(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	token, ok := sessionToken(r)
	if !ok {
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	var req backend.BatchGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, "Invalid request. Please check your input and try again.")
		return
	}

	if len(req.Grades) == 0 {
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest, "at least one grade is required")
		return
	}

	for _, grade := range req.Grades {
		if grade.PickID == "" {
			responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest, "pick_id is required for every grade")
			return
		}
		if !validGradeResults[grade.Result] {
			responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid result '%s'. Valid results: win, loss, push", grade.Result))
			return
		}
	}

	res := h.Backend.BatchGrade(r.Context(), token, req)
	if !res.OK {
		h.respondRequestError(w, r, res.Err)
		return
	}

	reqLogger.Info("batch grade applied",
		slog.Int("graded", res.Data.Graded),
		slog.Int("failed", len(res.Data.Failed)),
	)

	responses.RespondWithJSON(w, http.StatusOK, res.Data)
}
