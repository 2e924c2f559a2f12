// Package api provides HTTP handlers for the FamilyBridge API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/familybridge/familybridge/internal/catalog"
	"github.com/familybridge/familybridge/internal/config"
	"github.com/familybridge/familybridge/internal/identity"
	"github.com/familybridge/familybridge/internal/plan"
	"github.com/familybridge/familybridge/internal/scan"
	"github.com/familybridge/familybridge/internal/session"
	"github.com/familybridge/familybridge/internal/store"
	"github.com/familybridge/familybridge/internal/tracker"
	"github.com/go-chi/chi/v5"
)

// Handler carries the dependencies of the JSON API.
type Handler struct {
	cfg      *config.Config
	repo     store.Repository
	sessions *session.Store
	roster   *catalog.Roster
	analyzer scan.Analyzer
	checkout *plan.Checkout
	tracker  *tracker.Service
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(cfg *config.Config, repo store.Repository, sessions *session.Store, roster *catalog.Roster, analyzer scan.Analyzer, checkout *plan.Checkout, trk *tracker.Service) *Handler {
	return &Handler{
		cfg:      cfg,
		repo:     repo,
		sessions: sessions,
		roster:   roster,
		analyzer: analyzer,
		checkout: checkout,
		tracker:  trk,
	}
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/session", h.GetSession)

		r.Post("/scan", h.Scan)

		r.Post("/intake", h.StartIntake)
		r.Get("/intake", h.GetIntake)
		r.Post("/intake/next", h.IntakeNext)
		r.Post("/intake/back", h.IntakeBack)
		r.Put("/intake/fields", h.IntakeFields)

		r.Get("/plans", h.GetPlans)
		r.Post("/plans/select", h.SelectPlan)

		r.Get("/attorneys", h.GetAttorneys)
		r.Post("/attorneys/{id}/select", h.SelectAttorney)

		r.Get("/tracker", h.Track)

		r.Get("/report", h.GetReport)

		r.Get("/calendar/google", h.GoogleCalendar)
		r.Get("/calendar/outlook", h.OutlookCalendar)
		r.Get("/calendar/ics", h.DownloadICS)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// RedirectError writes the missing-navigation-state response: the client
// should send the user to the canonical entry point rather than show an
// error page.
func RedirectError(w http.ResponseWriter) {
	JSON(w, http.StatusConflict, map[string]string{
		"error":    "missing_navigation_state",
		"redirect": session.RedirectTarget,
	})
}

func (h *Handler) visitorID(r *http.Request) string {
	return identity.VisitorIDFromContext(r.Context())
}

// GetSession reports which navigation-state pieces the visitor holds, so the
// SPA can guard views client-side without guessing.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Get(h.visitorID(r))
	resp := map[string]interface{}{
		"hasExtraction": false,
		"hasWizard":     false,
		"hasCase":       false,
		"hasAttorney":   false,
	}
	if st != nil {
		resp["hasExtraction"] = st.Extraction != nil
		resp["hasWizard"] = st.Wizard != nil
		resp["hasCase"] = st.Case != nil
		resp["hasAttorney"] = st.Attorney != nil
		if st.Case != nil {
			resp["case"] = st.Case
		}
		if st.Attorney != nil {
			resp["attorney"] = st.Attorney
		}
	}
	JSON(w, http.StatusOK, resp)
}
