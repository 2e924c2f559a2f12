// Package intake implements the guided form wizard: a strictly linear
// five-step data-collection state machine over a case record draft.
package intake

import "github.com/familybridge/familybridge/internal/domain"

// Step describes one wizard step.
type Step struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Steps is the fixed, ordered wizard sequence.
var Steps = []Step{
	{ID: "parent", Title: "Parent Info"},
	{ID: "child", Title: "Child & Schedule"},
	{ID: "finances", Title: "Financial Details"},
	{ID: "court", Title: "Court Details"},
	{ID: "review", Title: "Review"},
}

// LastStep is the index of the review step, where Next becomes Submit.
const LastStep = 4

// Wizard is the in-progress intake session. Transitions are driven one user
// action at a time; there is no validation gate and any field may stay empty.
type Wizard struct {
	step      int
	direction int
	draft     *domain.CaseRecord
	prefilled bool
	noticed   bool
}

// New creates a wizard with an empty draft.
func New() *Wizard {
	return &Wizard{draft: &domain.CaseRecord{}}
}

// NewFromExtraction creates a wizard seeded once from a document scan.
func NewFromExtraction(e *domain.Extraction) *Wizard {
	return &Wizard{draft: e.Seed(), prefilled: true}
}

// Step returns the current step index (0..4).
func (w *Wizard) Step() int {
	return w.step
}

// Direction returns the last navigation direction (1 forward, -1 back, 0
// untouched). Presentation only; it drives the transition animation.
func (w *Wizard) Direction() int {
	return w.direction
}

// Draft returns the in-progress case record.
func (w *Wizard) Draft() *domain.CaseRecord {
	return w.draft
}

// Prefilled reports whether the draft was seeded from a scan.
func (w *Wizard) Prefilled() bool {
	return w.prefilled
}

// ConsumePrefillNotice returns true exactly once for a prefilled wizard, so
// the "fields were auto-populated" notification fires a single time.
func (w *Wizard) ConsumePrefillNotice() bool {
	if !w.prefilled || w.noticed {
		return false
	}
	w.noticed = true
	return true
}

// Next advances one step. At the review step it does not advance; it reports
// that the draft should be submitted instead.
func (w *Wizard) Next() (submitted bool) {
	if w.step < LastStep {
		w.direction = 1
		w.step++
		return false
	}
	return true
}

// Back retreats one step. A no-op at step 0.
func (w *Wizard) Back() {
	if w.step > 0 {
		w.direction = -1
		w.step--
	}
}

// SetField updates a draft field by its form name, with no coercion.
func (w *Wizard) SetField(name, value string) bool {
	return w.draft.SetField(name, value)
}
