package domain

// Extraction is the structured output of a document scan. The shape mirrors
// the payload returned by the scanning backend: applicant, child, support and
// court sections plus scanner confidence notes.
type Extraction struct {
	Applicant ExtractionApplicant `json:"applicant"`
	Child     ExtractionChild     `json:"child"`
	Support   ExtractionSupport   `json:"support"`
	Court     ExtractionCourt     `json:"court"`
	AI        ExtractionAI        `json:"ai"`
}

// ExtractionApplicant holds the filing parent's details as scanned.
type ExtractionApplicant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ExtractionChild holds the child's details as scanned.
type ExtractionChild struct {
	FullName string `json:"fullName"`
	DOB      string `json:"dob"`
}

// ExtractionSupport holds case and financial facts as scanned.
type ExtractionSupport struct {
	CaseNumber        string `json:"caseNumber"`
	MonthlyIncome     string `json:"monthlyIncome"`
	OtherParentIncome string `json:"otherParentIncome"`
	ChildcareCosts    string `json:"childcareCosts"`
	MedicalCosts      string `json:"medicalCosts"`
	CustodySchedule   string `json:"custodySchedule"`
}

// ExtractionCourt holds court facts as scanned.
type ExtractionCourt struct {
	CourtDate    string `json:"courtDate"`
	CourtName    string `json:"courtName"`
	CourtAddress string `json:"courtAddress"`
}

// ExtractionAI carries the scanner's confidence metadata.
type ExtractionAI struct {
	Confidence   float64  `json:"confidence"`
	Notes        []string `json:"notes"`
	QuickSummary string   `json:"quickSummary"`
}

// Seed builds a CaseRecord draft from the extraction, applying the scan-to-form
// field mapping. The raw payload stays attached to the record.
func (e *Extraction) Seed() *CaseRecord {
	return &CaseRecord{
		ParentFirstName:   e.Applicant.FirstName,
		ParentLastName:    e.Applicant.LastName,
		Email:             e.Applicant.Email,
		Phone:             e.Applicant.Phone,
		Address:           e.Applicant.Address,
		City:              e.Applicant.City,
		State:             e.Applicant.State,
		Zip:               e.Applicant.Zip,
		ChildName:         e.Child.FullName,
		ChildDOB:          e.Child.DOB,
		CustodySchedule:   e.Support.CustodySchedule,
		MonthlyIncome:     e.Support.MonthlyIncome,
		OtherParentIncome: e.Support.OtherParentIncome,
		ChildcareCosts:    e.Support.ChildcareCosts,
		MedicalCosts:      e.Support.MedicalCosts,
		CaseNumber:        e.Support.CaseNumber,
		CourtDate:         e.Court.CourtDate,
		CourtName:         e.Court.CourtName,
		Extraction:        e,
	}
}
