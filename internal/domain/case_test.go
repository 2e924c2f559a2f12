package domain

import "testing"

func TestPlanTypeIsValid(t *testing.T) {
	if !PlanAIBasic.IsValid() || !PlanLegalFull.IsValid() {
		t.Error("Expected both offered plans to be valid")
	}
	if PlanType("premium-plus").IsValid() {
		t.Error("Expected unknown plan type to be invalid")
	}
	if PlanType("").IsValid() {
		t.Error("Expected empty plan type to be invalid")
	}
}

func TestHasIdentity(t *testing.T) {
	if (&CaseRecord{}).HasIdentity() {
		t.Error("Expected empty record to have no identity")
	}
	if !(&CaseRecord{CaseNumber: "FC-2024-1029"}).HasIdentity() {
		t.Error("Expected case number alone to be an identity")
	}
	if !(&CaseRecord{Email: "jordan.lee@email.com"}).HasIdentity() {
		t.Error("Expected email alone to be an identity")
	}
}

func TestParentName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Jordan", "Lee", "Jordan Lee"},
		{"Jordan", "", "Jordan"},
		{"", "Lee", "Lee"},
		{"", "", ""},
	}

	for _, tt := range tests {
		c := &CaseRecord{ParentFirstName: tt.first, ParentLastName: tt.last}
		if got := c.ParentName(); got != tt.want {
			t.Errorf("ParentName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestSetFieldRoundTrip(t *testing.T) {
	c := &CaseRecord{}

	fields := map[string]string{
		"parentFirstName":   "Jordan",
		"email":             "jordan.lee@email.com",
		"childName":         "Avery Lee",
		"custodySchedule":   "60/40 shared schedule",
		"monthlyIncome":     "$4,200",
		"otherParentIncome": "$3,100",
		"caseNumber":        "FC-2024-1029",
		"courtDate":         "2024-03-22",
	}
	for name, value := range fields {
		if !c.SetField(name, value) {
			t.Errorf("Expected field %q to be known", name)
		}
	}
	for name, want := range fields {
		if got := c.Field(name); got != want {
			t.Errorf("Field(%q) = %q, want %q", name, got, want)
		}
	}

	if c.SetField("favoriteColor", "blue") {
		t.Error("Expected unknown field to be ignored")
	}
	if got := c.Field("favoriteColor"); got != "" {
		t.Errorf("Expected empty read for unknown field, got %q", got)
	}
}

func TestExtractionSeed(t *testing.T) {
	e := &Extraction{
		Applicant: ExtractionApplicant{FirstName: "JORDAN", LastName: "LEE", Email: "jordan.lee@email.com", City: "ATLANTA"},
		Child:     ExtractionChild{FullName: "AVERY LEE", DOB: "2016-04-12"},
		Support:   ExtractionSupport{CaseNumber: "FC-2024-1029", MonthlyIncome: "$4,200"},
		Court:     ExtractionCourt{CourtDate: "2024-03-22", CourtName: "FULTON COUNTY FAMILY COURT"},
	}

	c := e.Seed()
	if c.ParentFirstName != "JORDAN" || c.ChildName != "AVERY LEE" {
		t.Errorf("Expected mapped names, got %q / %q", c.ParentFirstName, c.ChildName)
	}
	if c.CaseNumber != "FC-2024-1029" || c.CourtDate != "2024-03-22" {
		t.Errorf("Expected mapped case facts, got %q / %q", c.CaseNumber, c.CourtDate)
	}
	if c.Extraction != e {
		t.Error("Expected raw extraction attached to the seeded record")
	}
}
