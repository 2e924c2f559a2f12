package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// GetAttorneys returns the fixed matching roster. The only personalization is
// the cosmetic "near" string echoing the case's city.
func (h *Handler) GetAttorneys(w http.ResponseWriter, r *http.Request) {
	near := "Atlanta, GA"
	if st := h.sessions.Get(h.visitorID(r)); st != nil && st.Case != nil && st.Case.City != "" {
		near = st.Case.City
	}
	JSON(w, http.StatusOK, map[string]interface{}{
		"attorneys": h.roster.All(),
		"near":      near,
	})
}

// SelectAttorney binds a roster attorney into navigation state after the
// simulated connect delay. No case details are actually dispatched anywhere.
func (h *Handler) SelectAttorney(w http.ResponseWriter, r *http.Request) {
	visitorID := h.visitorID(r)

	caseRec, err := h.sessions.RequireCase(visitorID)
	if err != nil {
		RedirectError(w)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_attorney_id")
		return
	}
	attorney := h.roster.ByID(id)
	if attorney == nil {
		Error(w, http.StatusNotFound, "attorney_not_found")
		return
	}

	if d := h.cfg.Sim.MatchDelay; d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-r.Context().Done():
			// Navigated away mid-"connect"; the binding is discarded.
			return
		case <-timer.C:
		}
	}

	st := h.sessions.GetOrCreate(visitorID)
	st.Attorney = attorney
	h.sessions.Save(visitorID, st)

	slog.Info("Attorney selected", "visitor_id", visitorID, "attorney", attorney.Name, "case_number", caseRec.CaseNumber)
	JSON(w, http.StatusOK, map[string]interface{}{
		"status":   "connected",
		"redirect": "/lawyer-confirmation",
		"attorney": attorney,
	})
}
