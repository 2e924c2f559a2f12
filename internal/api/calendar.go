package api

import (
	"net/http"

	"github.com/familybridge/familybridge/internal/calendar"
	"github.com/familybridge/familybridge/internal/report"
)

// GetReport builds the strategy report for the visitor's case.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	caseRec, err := h.sessions.RequireCase(h.visitorID(r))
	if err != nil {
		RedirectError(w)
		return
	}
	JSON(w, http.StatusOK, report.Build(caseRec))
}

// GoogleCalendar returns the prefilled (or generic) Google event URL.
func (h *Handler) GoogleCalendar(w http.ResponseWriter, r *http.Request) {
	caseRec, err := h.sessions.RequireCase(h.visitorID(r))
	if err != nil {
		RedirectError(w)
		return
	}
	JSON(w, http.StatusOK, map[string]string{"url": calendar.GoogleCalendarURL(caseRec)})
}

// OutlookCalendar returns the prefilled (or generic) Outlook event URL.
func (h *Handler) OutlookCalendar(w http.ResponseWriter, r *http.Request) {
	caseRec, err := h.sessions.RequireCase(h.visitorID(r))
	if err != nil {
		RedirectError(w)
		return
	}
	JSON(w, http.StatusOK, map[string]string{"url": calendar.OutlookCalendarURL(caseRec)})
}

// DownloadICS streams the .ics file for the court date. Without a parseable
// court date the export silently no-ops with 204.
func (h *Handler) DownloadICS(w http.ResponseWriter, r *http.Request) {
	caseRec, err := h.sessions.RequireCase(h.visitorID(r))
	if err != nil {
		RedirectError(w)
		return
	}

	content, ok := calendar.BuildICS(caseRec)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+calendar.ICSFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}
