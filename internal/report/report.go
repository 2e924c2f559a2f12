// Package report builds the strategy report shown on the confirmation view.
// The content is canned guidance interpolated with case facts; printing to
// PDF happens in the browser via the print dialog.
package report

import (
	"strings"
	"time"

	"github.com/familybridge/familybridge/internal/domain"
)

// Step is one recommended preparation step.
type Step struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Report is the strategy report payload.
type Report struct {
	CaseRef          string   `json:"caseRef"`
	Summary          string   `json:"summary"`
	PreparationScore string   `json:"preparationScore"`
	EstimatedImpact  string   `json:"estimatedImpact"`
	KeyFactors       []string `json:"keyFactors"`
	Steps            []Step   `json:"steps"`
	Arguments        []string `json:"arguments"`
	Evidence         []string `json:"evidence"`
	CourtDate        string   `json:"courtDate"`
	CourtName        string   `json:"courtName"`
	Questions        []string `json:"questions"`
	LocalNotes       []string `json:"localNotes"`
	Disclaimer       string   `json:"disclaimer"`
	PlanType         domain.PlanType `json:"planType,omitempty"`
}

// Build assembles the report for a case record.
func Build(c *domain.CaseRecord) *Report {
	schedule := c.CustodySchedule
	if schedule == "" {
		schedule = "not provided"
	}

	return &Report{
		CaseRef:          caseRef(c.CaseNumber),
		Summary:          "Based on the custody schedule (" + schedule + ") and reported incomes, this strategy highlights the strongest, court-relevant facts and the documentation that supports them.",
		PreparationScore: "82%",
		EstimatedImpact:  "Moderate",
		KeyFactors: []string{
			"Income documentation present for at least one parent",
			"Custody schedule noted in documents",
			"Childcare and medical costs identified",
		},
		Steps: []Step{
			{Title: "Document Completeness", Desc: "Ensure both parents' income statements and recent pay stubs are current and consistent across forms."},
			{Title: "Custody Summary", Desc: "Bring a concise schedule summary with overnights, midweek exchanges, and school-day responsibility."},
			{Title: "Expense Evidence", Desc: "Organize childcare, medical, and education receipts by month with totals highlighted."},
			{Title: "Consistency Check", Desc: "Make sure affidavits, pay stubs, and bank deposits align to avoid credibility issues."},
		},
		Arguments: []string{
			"Stable, consistent parenting time aligned with the current schedule.",
			"Documented income changes that materially impact the calculation.",
			"Verified childcare and medical costs tied directly to the child's needs.",
			"Clear breakdown of who pays which recurring expenses.",
			"Good-faith efforts to follow prior orders and communicate changes.",
		},
		Evidence: []string{
			"Last 3-6 months of pay stubs and year-to-date totals.",
			"Most recent tax return (W-2/1099s if applicable).",
			"Childcare invoices and proof of payment.",
			"Medical/dental insurance premiums and receipts.",
			"Parenting plan and any modification agreements.",
			"Calendar or app logs showing parenting time.",
		},
		CourtDate: formatCourtDate(c.CourtDate),
		CourtName: courtName(c.CourtName),
		Questions: []string{
			"How does Fulton County typically weigh childcare and medical expenses?",
			"What documentation is most persuasive for income changes?",
			"Are there local guidelines for shared custody calculations?",
			"What timeline should I expect after filing?",
		},
		LocalNotes: []string{
			"Bring a completed Georgia Child Support Worksheet if your court requires it.",
			"Have a Domestic Relations Financial Affidavit ready for both parents if requested.",
			"Keep organized, labeled copies for the judge, the other party, and yourself.",
		},
		Disclaimer: "This report is for informational purposes only and does not constitute legal advice. FamilyBridge is an AI-powered legal information tool, not a law firm. Use this as preparation material and consult a licensed attorney for legal advice.",
		PlanType:   c.PlanType,
	}
}

// caseRef compresses the case number into the short reference printed on the
// report header; unknown when no case number was given.
func caseRef(caseNumber string) string {
	var b strings.Builder
	for _, r := range caseNumber {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == 8 {
			break
		}
	}
	if b.Len() == 0 {
		return "Unknown"
	}
	return b.String()
}

func formatCourtDate(s string) string {
	if s == "" {
		return "Date TBD"
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "Date TBD"
	}
	return t.Format("Monday, January 2, 2006")
}

func courtName(s string) string {
	if s == "" {
		return "County Courthouse"
	}
	return s
}
