// Package tracker implements the case status tracker: a lookup against the
// persisted case repository rendered over a fixed five-stage lifecycle.
package tracker

import "github.com/familybridge/familybridge/internal/domain"

// Stage is one of the five fixed lifecycle stages, in display order.
type Stage struct {
	ID        domain.CaseStatus `json:"id"`
	Label     string            `json:"label"`
	Desc      string            `json:"desc"`
	NextSteps string            `json:"nextSteps"`
}

// Stages is the fixed, ordered lifecycle. Index positions are the stage
// indices the tracker reports.
var Stages = []Stage{
	{
		ID:        domain.StatusSubmitted,
		Label:     "Intake Submitted",
		Desc:      "We have received your documents.",
		NextSteps: "We are reviewing your uploaded documents and confirming details.",
	},
	{
		ID:        domain.StatusReview,
		Label:     "Case Review",
		Desc:      "We are summarizing key details.",
		NextSteps: "Our AI is summarizing income, custody, and expense factors.",
	},
	{
		ID:        domain.StatusStrategyBuilt,
		Label:     "Strategy Drafted",
		Desc:      "Your plan is ready.",
		NextSteps: "Your strategy draft is ready for review.",
	},
	{
		ID:        domain.StatusAttorney,
		Label:     "Attorney Review",
		Desc:      "Optional attorney review in progress.",
		NextSteps: "An attorney can review and suggest next steps.",
	},
	{
		ID:        domain.StatusReady,
		Label:     "Ready for Court",
		Desc:      "Your packet is complete.",
		NextSteps: "Your packet is ready. Check your email for final documents.",
	},
}

// StageIndex maps a stored status to its position in the lifecycle. Unknown
// status values deliberately map to 0 (submitted) rather than an error: a row
// with a status this build does not recognize still renders as a case at the
// start of the pipeline instead of breaking the tracker.
func StageIndex(status domain.CaseStatus) int {
	for i, s := range Stages {
		if s.ID == status {
			return i
		}
	}
	return 0
}

// ProgressPercent returns the tracker bar position for a stage index,
// computed as index over the final stage index.
func ProgressPercent(index int) float64 {
	return float64(index) / float64(len(Stages)-1) * 100
}
