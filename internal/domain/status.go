package domain

import "time"

// CaseStatus is one of the five fixed lifecycle stages a persisted case can
// occupy. The tracker renders these in order; the reviewing side advances them.
type CaseStatus string

const (
	StatusSubmitted     CaseStatus = "submitted"
	StatusReview        CaseStatus = "review"
	StatusStrategyBuilt CaseStatus = "strategy_built"
	StatusAttorney      CaseStatus = "attorney"
	StatusReady         CaseStatus = "ready"
)

// StoredCase is a persisted case row, keyed by (case_number, email).
type StoredCase struct {
	ID              string     `json:"id"`
	CaseNumber      string     `json:"case_number"`
	Email           string     `json:"email"`
	Status          CaseStatus `json:"status"`
	ParentName      string     `json:"parent_name"`
	ChildName       string     `json:"child_name"`
	CustodySchedule string     `json:"custody_schedule"`
	MonthlyIncome   string     `json:"monthly_income"`
	OtherParentIncome string   `json:"other_parent_income"`
	ChildcareCosts  string     `json:"childcare_costs"`
	MedicalCosts    string     `json:"medical_costs"`
	CourtName       string     `json:"court_name"`
	CourtDate       string     `json:"court_date"`
	PlanType        PlanType   `json:"plan_type,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
