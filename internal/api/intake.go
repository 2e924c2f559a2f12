package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/familybridge/familybridge/internal/domain"
	"github.com/familybridge/familybridge/internal/intake"
)

// wizardView is the JSON shape of the wizard state sent to the SPA.
type wizardView struct {
	Step       int                `json:"step"`
	Direction  int                `json:"direction"`
	Steps      []intake.Step      `json:"steps"`
	Draft      *domain.CaseRecord `json:"draft"`
	Prefilled  bool               `json:"prefilled"`
	Autofilled bool               `json:"autofilled,omitempty"` // one-time notice
	Submitted  bool               `json:"submitted,omitempty"`
	Redirect   string             `json:"redirect,omitempty"`
}

func viewOf(wz *intake.Wizard) *wizardView {
	return &wizardView{
		Step:      wz.Step(),
		Direction: wz.Direction(),
		Steps:     intake.Steps,
		Draft:     wz.Draft(),
		Prefilled: wz.Prefilled(),
	}
}

// StartIntake begins (or restarts) the wizard. When the body asks for a
// scan-sourced start and an extraction is present in navigation state, the
// draft is seeded from it once; otherwise the draft starts empty.
func (h *Handler) StartIntake(w http.ResponseWriter, r *http.Request) {
	visitorID := h.visitorID(r)

	var body struct {
		FromScan bool `json:"fromScan"`
	}
	if r.Body != nil {
		// A missing or empty body means a manual start.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	st := h.sessions.GetOrCreate(visitorID)

	var wz *intake.Wizard
	if body.FromScan && st.Extraction != nil {
		wz = intake.NewFromExtraction(st.Extraction)
	} else {
		wz = intake.New()
	}
	st.Wizard = wz
	st.Case = nil
	h.sessions.Save(visitorID, st)

	view := viewOf(wz)
	view.Autofilled = wz.ConsumePrefillNotice()
	slog.Info("Intake started", "visitor_id", visitorID, "prefilled", wz.Prefilled())
	JSON(w, http.StatusOK, view)
}

// GetIntake returns the current wizard state.
func (h *Handler) GetIntake(w http.ResponseWriter, r *http.Request) {
	wz, ok := h.requireWizard(w, r)
	if !ok {
		return
	}
	JSON(w, http.StatusOK, viewOf(wz))
}

// IntakeNext advances the wizard one step. At the review step it submits
// instead: the draft becomes the visitor's case record and, when the draft
// carries both lookup keys, a case row is persisted with status "submitted".
func (h *Handler) IntakeNext(w http.ResponseWriter, r *http.Request) {
	visitorID := h.visitorID(r)
	wz, ok := h.requireWizard(w, r)
	if !ok {
		return
	}

	if submitted := wz.Next(); submitted {
		st := h.sessions.GetOrCreate(visitorID)
		st.Case = wz.Draft()
		st.Wizard = nil
		h.sessions.Save(visitorID, st)

		h.persistSubmission(r.Context(), st.Case)

		slog.Info("Intake submitted", "visitor_id", visitorID, "case_number", st.Case.CaseNumber)
		view := viewOf(wz)
		view.Submitted = true
		view.Redirect = "/confirmation"
		JSON(w, http.StatusOK, view)
		return
	}

	h.saveWizard(visitorID, wz)
	JSON(w, http.StatusOK, viewOf(wz))
}

// IntakeBack retreats the wizard one step; a no-op at the first step.
func (h *Handler) IntakeBack(w http.ResponseWriter, r *http.Request) {
	visitorID := h.visitorID(r)
	wz, ok := h.requireWizard(w, r)
	if !ok {
		return
	}
	wz.Back()
	h.saveWizard(visitorID, wz)
	JSON(w, http.StatusOK, viewOf(wz))
}

// IntakeFields applies free-form field updates to the draft. Unknown field
// names are ignored, never rejected.
func (h *Handler) IntakeFields(w http.ResponseWriter, r *http.Request) {
	visitorID := h.visitorID(r)
	wz, ok := h.requireWizard(w, r)
	if !ok {
		return
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Error(w, http.StatusBadRequest, "invalid_body")
		return
	}

	for name, value := range body.Fields {
		wz.SetField(name, value)
	}
	h.saveWizard(visitorID, wz)
	JSON(w, http.StatusOK, viewOf(wz))
}

func (h *Handler) requireWizard(w http.ResponseWriter, r *http.Request) (*intake.Wizard, bool) {
	st := h.sessions.Get(h.visitorID(r))
	if st == nil || st.Wizard == nil {
		RedirectError(w)
		return nil, false
	}
	return st.Wizard, true
}

func (h *Handler) saveWizard(visitorID string, wz *intake.Wizard) {
	st := h.sessions.GetOrCreate(visitorID)
	st.Wizard = wz
	h.sessions.Save(visitorID, st)
}

// persistSubmission writes the case row the status tracker later reads.
// Drafts without both lookup keys stay in memory only: there is nothing the
// tracker could find them by. Persistence failure is logged, not surfaced;
// the visitor's in-memory flow continues regardless.
func (h *Handler) persistSubmission(ctx context.Context, c *domain.CaseRecord) {
	if c.CaseNumber == "" || c.Email == "" {
		return
	}

	now := time.Now()
	stored := &domain.StoredCase{
		CaseNumber:        c.CaseNumber,
		Email:             c.Email,
		Status:            domain.StatusSubmitted,
		ParentName:        c.ParentName(),
		ChildName:         c.ChildName,
		CustodySchedule:   c.CustodySchedule,
		MonthlyIncome:     c.MonthlyIncome,
		OtherParentIncome: c.OtherParentIncome,
		ChildcareCosts:    c.ChildcareCosts,
		MedicalCosts:      c.MedicalCosts,
		CourtName:         c.CourtName,
		CourtDate:         c.CourtDate,
		PlanType:          c.PlanType,
		CreatedAt:         now,
	}
	if err := h.repo.CreateCase(ctx, stored); err != nil {
		slog.Warn("Failed to persist case submission", "error", err, "case_number", c.CaseNumber)
	}
}
