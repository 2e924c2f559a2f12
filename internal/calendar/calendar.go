// Package calendar builds court-date reminders for a case record: prefilled
// Google and Outlook event URLs and a downloadable .ics file.
package calendar

import (
	"net/url"
	"strings"
	"time"

	"github.com/familybridge/familybridge/internal/domain"
	"github.com/google/uuid"
)

const (
	googleComposeURL  = "https://calendar.google.com/calendar/u/0/r/eventedit"
	outlookComposeURL = "https://outlook.live.com/calendar/0/deeplink/compose"

	icsStampFormat = "20060102T150405Z"
	eventDuration  = time.Hour
)

// parseCourtDate parses the record's court date. Court dates arrive as ISO
// date strings or empty; anything unparseable counts as "no date set".
func parseCourtDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func summary(c *domain.CaseRecord) string {
	caseLabel := c.CaseNumber
	if caseLabel == "" {
		caseLabel = "Child Support Case"
	}
	return "FamilyBridge Court Prep: " + caseLabel
}

func location(c *domain.CaseRecord) string {
	if c.CourtName != "" {
		return c.CourtName
	}
	return "Family Court"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// buildDetails assembles the event description block.
func buildDetails(c *domain.CaseRecord) string {
	lines := []string{
		"Case Number: " + orNA(c.CaseNumber),
		"Child: " + orNA(c.ChildName),
		"Custody Schedule: " + orNA(c.CustodySchedule),
		"Monthly Income: " + orNA(c.MonthlyIncome),
		"Other Parent Income: " + orNA(c.OtherParentIncome),
		"Prepared with FamilyBridge.",
	}
	return strings.Join(lines, "\n")
}

// GoogleCalendarURL returns a prefilled Google Calendar event URL. Without a
// parseable court date it degrades to the generic compose URL, carrying no
// dates parameter.
func GoogleCalendarURL(c *domain.CaseRecord) string {
	start, ok := parseCourtDate(c.CourtDate)
	if !ok {
		return googleComposeURL
	}
	end := start.Add(eventDuration)

	params := url.Values{}
	params.Set("text", summary(c))
	params.Set("dates", start.Format(icsStampFormat)+"/"+end.Format(icsStampFormat))
	params.Set("details", buildDetails(c))
	params.Set("location", location(c))

	return googleComposeURL + "?" + params.Encode()
}

// OutlookCalendarURL returns a prefilled Outlook event URL. Without a
// parseable court date it degrades to the generic compose URL, carrying no
// startdt parameter.
func OutlookCalendarURL(c *domain.CaseRecord) string {
	start, ok := parseCourtDate(c.CourtDate)
	if !ok {
		return outlookComposeURL
	}
	end := start.Add(eventDuration)

	params := url.Values{}
	params.Set("subject", summary(c))
	params.Set("startdt", start.Format(time.RFC3339))
	params.Set("enddt", end.Format(time.RFC3339))
	params.Set("body", buildDetails(c))
	params.Set("location", location(c))

	return outlookComposeURL + "?" + params.Encode()
}

// BuildICS renders a VCALENDAR/VEVENT for the court date. Returns ok=false
// when the record has no parseable court date, in which case the export
// silently does nothing.
func BuildICS(c *domain.CaseRecord) (content string, ok bool) {
	start, parsed := parseCourtDate(c.CourtDate)
	if !parsed {
		return "", false
	}
	end := start.Add(eventDuration)
	details := strings.ReplaceAll(buildDetails(c), "\n", "\\n")

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//FamilyBridge//Support Prep//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + uuid.NewString() + "@familybridge.ai",
		"DTSTAMP:" + start.Format(icsStampFormat),
		"DTSTART:" + start.Format(icsStampFormat),
		"DTEND:" + end.Format(icsStampFormat),
		"SUMMARY:" + summary(c),
		"LOCATION:" + location(c),
		"DESCRIPTION:" + details,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\n"), true
}

// ICSFilename is the download name for the .ics export.
const ICSFilename = "familybridge-court-prep.ics"
