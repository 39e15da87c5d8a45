package handlers

import (
	"net/http"

	"github.com/pickem-crew/pickem-dashboard/internal/responses"
)

type healthResponse struct {
	Status string `json:"status"`
}

// HandleLive reports that the dashboard process is up
func (h *HandlerService) HandleLive(w http.ResponseWriter, r *http.Request) {
	responses.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// HandleReady reports whether the backend API is reachable. Bypasses the
// response cache so a stale entry cannot mask an outage.
func (h *HandlerService) HandleReady(w http.ResponseWriter, r *http.Request) {
	if err := h.Backend.Ping(r.Context()); err != nil {
		responses.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "backend unreachable"})
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
