package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/familybridge/familybridge/internal/domain"
	"github.com/familybridge/familybridge/internal/plan"
)

// GetPlans returns the two fixed-price offerings.
func (h *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{"plans": plan.Plans})
}

// SelectPlan runs the simulated checkout and tags the case with the chosen
// plan. Without a case record in navigation state the action redirects to the
// intake entry point instead of proceeding.
func (h *Handler) SelectPlan(w http.ResponseWriter, r *http.Request) {
	visitorID := h.visitorID(r)

	caseRec, err := h.sessions.RequireCase(visitorID)
	if err != nil {
		RedirectError(w)
		return
	}

	var body struct {
		PlanType domain.PlanType `json:"planType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Error(w, http.StatusBadRequest, "invalid_body")
		return
	}

	if err := h.checkout.Process(r.Context(), caseRec, body.PlanType); err != nil {
		switch {
		case errors.Is(err, plan.ErrUnknownPlan):
			Error(w, http.StatusBadRequest, "unknown_plan")
		case errors.Is(err, plan.ErrNoIdentity):
			// A draft that never picked up a case number or email cannot
			// proceed; send the user back to the start of the flow.
			RedirectError(w)
		case errors.Is(err, context.Canceled):
			// Navigated away mid-"payment"; the tag is discarded.
		default:
			slog.Error("Checkout failed", "error", err, "visitor_id", visitorID)
			Error(w, http.StatusInternalServerError, "checkout_failed")
		}
		return
	}

	st := h.sessions.GetOrCreate(visitorID)
	st.Case = caseRec
	h.sessions.Save(visitorID, st)

	slog.Info("Plan selected", "visitor_id", visitorID, "plan", body.PlanType)
	JSON(w, http.StatusOK, map[string]interface{}{
		"status":   "paid",
		"redirect": "/confirmation",
		"caseData": caseRec,
	})
}
