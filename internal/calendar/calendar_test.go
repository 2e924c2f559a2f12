package calendar

import (
	"net/url"
	"strings"
	"testing"

	"github.com/familybridge/familybridge/internal/domain"
)

func datedCase() *domain.CaseRecord {
	return &domain.CaseRecord{
		CaseNumber:        "FC-2024-1029",
		ChildName:         "AVERY LEE",
		CustodySchedule:   "60/40 shared schedule",
		MonthlyIncome:     "$4,200",
		OtherParentIncome: "$3,100",
		CourtDate:         "2024-03-22",
		CourtName:         "FULTON COUNTY FAMILY COURT",
	}
}

func TestGoogleCalendarURLWithDate(t *testing.T) {
	raw := GoogleCalendarURL(datedCase())

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse URL: %v", err)
	}
	q := u.Query()

	if got := q.Get("dates"); got != "20240322T000000Z/20240322T010000Z" {
		t.Errorf("Expected one-hour UTC window, got %q", got)
	}
	if got := q.Get("text"); got != "FamilyBridge Court Prep: FC-2024-1029" {
		t.Errorf("Expected summary with case number, got %q", got)
	}
	if got := q.Get("location"); got != "FULTON COUNTY FAMILY COURT" {
		t.Errorf("Expected court name as location, got %q", got)
	}
	if !strings.Contains(q.Get("details"), "Case Number: FC-2024-1029") {
		t.Errorf("Expected details block with case number, got %q", q.Get("details"))
	}
}

func TestCalendarURLsDegradeWithoutDate(t *testing.T) {
	c := datedCase()
	c.CourtDate = ""

	if got := GoogleCalendarURL(c); got != googleComposeURL {
		t.Errorf("Expected bare Google compose URL without a date, got %q", got)
	}
	if got := OutlookCalendarURL(c); got != outlookComposeURL {
		t.Errorf("Expected bare Outlook compose URL without a date, got %q", got)
	}

	c.CourtDate = "sometime in spring"
	if got := GoogleCalendarURL(c); got != googleComposeURL {
		t.Errorf("Expected unparseable date to degrade like a missing one, got %q", got)
	}
}

func TestOutlookCalendarURLWithDate(t *testing.T) {
	raw := OutlookCalendarURL(datedCase())

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse URL: %v", err)
	}
	q := u.Query()

	if got := q.Get("startdt"); got != "2024-03-22T00:00:00Z" {
		t.Errorf("Expected RFC3339 start, got %q", got)
	}
	if got := q.Get("enddt"); got != "2024-03-22T01:00:00Z" {
		t.Errorf("Expected RFC3339 end one hour later, got %q", got)
	}
	if got := q.Get("subject"); got != "FamilyBridge Court Prep: FC-2024-1029" {
		t.Errorf("Expected subject with case number, got %q", got)
	}
}

func TestBuildICS(t *testing.T) {
	content, ok := BuildICS(datedCase())
	if !ok {
		t.Fatal("Expected ICS content for a dated case")
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"DTSTART:20240322T000000Z",
		"DTEND:20240322T010000Z",
		"SUMMARY:FamilyBridge Court Prep: FC-2024-1029",
		"LOCATION:FULTON COUNTY FAMILY COURT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected ICS to contain %q", want)
		}
	}
	if !strings.Contains(content, "@familybridge.ai") {
		t.Error("Expected a UID in the familybridge.ai namespace")
	}
	if !strings.Contains(content, `Case Number: FC-2024-1029\nChild: AVERY LEE`) {
		t.Error("Expected description newlines to be escaped")
	}
}

func TestBuildICSWithoutDate(t *testing.T) {
	c := datedCase()
	c.CourtDate = ""
	if _, ok := BuildICS(c); ok {
		t.Error("Expected no ICS without a court date")
	}
}

func TestFallbackSummaryAndLocation(t *testing.T) {
	c := &domain.CaseRecord{CourtDate: "2024-03-22"}

	raw := GoogleCalendarURL(c)
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse URL: %v", err)
	}
	q := u.Query()

	if got := q.Get("text"); got != "FamilyBridge Court Prep: Child Support Case" {
		t.Errorf("Expected generic summary without a case number, got %q", got)
	}
	if got := q.Get("location"); got != "Family Court" {
		t.Errorf("Expected generic location without a court name, got %q", got)
	}
	if !strings.Contains(q.Get("details"), "Case Number: N/A") {
		t.Errorf("Expected N/A placeholders in details, got %q", q.Get("details"))
	}
}
