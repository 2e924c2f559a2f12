package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/familybridge/familybridge/internal/tracker"
)

// Track looks up a persisted case by exact (case number, email) and returns
// its stage view. "Not found" and transport failures are distinct responses;
// neither changes any server-side state, and the client stays on the search
// form either way.
func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	caseNumber := r.URL.Query().Get("case")
	email := r.URL.Query().Get("email")

	view, err := h.tracker.Lookup(r.Context(), caseNumber, email)
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrMissingFields):
			Error(w, http.StatusBadRequest, "missing_form_fields")
		case errors.Is(err, tracker.ErrNotFound):
			Error(w, http.StatusNotFound, "case_not_found")
		default:
			slog.Error("Case lookup failed", "error", err, "case_number", caseNumber)
			Error(w, http.StatusBadGateway, "lookup_failed")
		}
		return
	}

	JSON(w, http.StatusOK, view)
}
