// Package domain contains core domain types for the FamilyBridge application.
package domain

// PlanType identifies the preparation track a user has paid for.
type PlanType string

const (
	// PlanAIBasic is the self-serve AI strategy draft.
	PlanAIBasic PlanType = "ai-basic"
	// PlanLegalFull is the attorney-reviewed package.
	PlanLegalFull PlanType = "legal-full"
)

// IsValid reports whether the plan type is one of the two offered plans.
func (p PlanType) IsValid() bool {
	return p == PlanAIBasic || p == PlanLegalFull
}

// CaseRecord is the in-progress or submitted child-support preparation data.
// Every field is free text supplied by the user or the document scan; nothing
// is type- or range-checked. Financial fields keep whatever the user typed,
// currency symbols included.
type CaseRecord struct {
	ParentFirstName string `json:"parentFirstName"`
	ParentLastName  string `json:"parentLastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`

	ChildName       string `json:"childName"`
	ChildDOB        string `json:"childDob"`
	CustodySchedule string `json:"custodySchedule"`

	MonthlyIncome     string `json:"monthlyIncome"`
	OtherParentIncome string `json:"otherParentIncome"`
	ChildcareCosts    string `json:"childcareCosts"`
	MedicalCosts      string `json:"medicalCosts"`

	CaseNumber string `json:"caseNumber"`
	CourtDate  string `json:"courtDate"`
	CourtName  string `json:"courtName"`

	PlanType PlanType `json:"planType,omitempty"`

	// Extraction is the raw scan payload when the record was seeded from the
	// document intake flow.
	Extraction *Extraction `json:"extraction,omitempty"`
}

// HasIdentity reports whether the record carries at least one lookup key.
// A record reaching plan selection must satisfy this.
func (c *CaseRecord) HasIdentity() bool {
	return c.CaseNumber != "" || c.Email != ""
}

// ParentName returns the display name of the filing parent.
func (c *CaseRecord) ParentName() string {
	switch {
	case c.ParentFirstName != "" && c.ParentLastName != "":
		return c.ParentFirstName + " " + c.ParentLastName
	case c.ParentFirstName != "":
		return c.ParentFirstName
	default:
		return c.ParentLastName
	}
}

// SetField updates a single field by its form name. Unknown names are
// ignored, matching the free-form wizard contract. Returns true when the
// name matched a field.
func (c *CaseRecord) SetField(name, value string) bool {
	switch name {
	case "parentFirstName":
		c.ParentFirstName = value
	case "parentLastName":
		c.ParentLastName = value
	case "email":
		c.Email = value
	case "phone":
		c.Phone = value
	case "address":
		c.Address = value
	case "city":
		c.City = value
	case "state":
		c.State = value
	case "zip":
		c.Zip = value
	case "childName":
		c.ChildName = value
	case "childDob":
		c.ChildDOB = value
	case "custodySchedule":
		c.CustodySchedule = value
	case "monthlyIncome":
		c.MonthlyIncome = value
	case "otherParentIncome":
		c.OtherParentIncome = value
	case "childcareCosts":
		c.ChildcareCosts = value
	case "medicalCosts":
		c.MedicalCosts = value
	case "caseNumber":
		c.CaseNumber = value
	case "courtDate":
		c.CourtDate = value
	case "courtName":
		c.CourtName = value
	default:
		return false
	}
	return true
}

// Field reads a single field by its form name. Returns "" for unknown names.
func (c *CaseRecord) Field(name string) string {
	switch name {
	case "parentFirstName":
		return c.ParentFirstName
	case "parentLastName":
		return c.ParentLastName
	case "email":
		return c.Email
	case "phone":
		return c.Phone
	case "address":
		return c.Address
	case "city":
		return c.City
	case "state":
		return c.State
	case "zip":
		return c.Zip
	case "childName":
		return c.ChildName
	case "childDob":
		return c.ChildDOB
	case "custodySchedule":
		return c.CustodySchedule
	case "monthlyIncome":
		return c.MonthlyIncome
	case "otherParentIncome":
		return c.OtherParentIncome
	case "childcareCosts":
		return c.ChildcareCosts
	case "medicalCosts":
		return c.MedicalCosts
	case "caseNumber":
		return c.CaseNumber
	case "courtDate":
		return c.CourtDate
	case "courtName":
		return c.CourtName
	default:
		return ""
	}
}
