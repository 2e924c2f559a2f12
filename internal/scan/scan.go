// Package scan implements the document intake flow. The current analyzer is
// a simulation: it checks only the file size, waits a fixed delay, and
// returns one pre-baked extraction regardless of the file's contents. The
// Analyzer interface is the seam a real OCR backend would implement.
package scan

import (
	"context"
	"errors"
	"time"

	"github.com/familybridge/familybridge/internal/domain"
)

// MaxFileSize is the inclusive upload limit: exactly 10MB is accepted.
const MaxFileSize = 10 * 1024 * 1024

var (
	// ErrNoFileSelected means the request carried no file.
	ErrNoFileSelected = errors.New("no file selected")
	// ErrFileTooLarge means the file exceeded MaxFileSize.
	ErrFileTooLarge = errors.New("file too large")
)

// Upload describes the file handed to the analyzer. Only Size is inspected.
type Upload struct {
	Name string
	Size int64
}

// CheckUpload applies the intake gate. It is the only validation the flow
// performs; content and type are never inspected.
func CheckUpload(u *Upload) error {
	if u == nil || u.Name == "" {
		return ErrNoFileSelected
	}
	if u.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// Analyzer turns an accepted upload into a structured extraction. A real
// backend integration satisfies the same submit-then-result contract as the
// stub.
type Analyzer interface {
	Analyze(ctx context.Context, u *Upload) (*domain.Extraction, error)
}

// StubAnalyzer is the demo analyzer: a fixed delay followed by a fixed
// payload.
type StubAnalyzer struct {
	Delay   time.Duration
	Payload *domain.Extraction
}

// NewStubAnalyzer returns the demo analyzer with the canned child-support
// extraction.
func NewStubAnalyzer(delay time.Duration) *StubAnalyzer {
	return &StubAnalyzer{Delay: delay, Payload: DemoExtraction()}
}

// Analyze waits the configured delay and returns the canned payload. The
// upload's contents are deliberately ignored. Cancelling the context while
// the simulated scan is pending discards the result.
func (a *StubAnalyzer) Analyze(ctx context.Context, u *Upload) (*domain.Extraction, error) {
	if err := CheckUpload(u); err != nil {
		return nil, err
	}
	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	payload := a.Payload
	if payload == nil {
		payload = DemoExtraction()
	}
	return payload, nil
}

// DemoExtraction is the fixed scan result returned for every upload.
func DemoExtraction() *domain.Extraction {
	return &domain.Extraction{
		Applicant: domain.ExtractionApplicant{
			FirstName: "JORDAN",
			LastName:  "LEE",
			FullName:  "JORDAN LEE",
			Address:   "245 PEACHTREE ST NE",
			City:      "ATLANTA",
			State:     "GA",
			Zip:       "30303",
			Email:     "jordan.lee@email.com",
			Phone:     "(404) 555-0142",
		},
		Child: domain.ExtractionChild{
			FullName: "AVERY LEE",
			DOB:      "2016-04-12",
		},
		Support: domain.ExtractionSupport{
			CaseNumber:        "FC-2024-1029",
			MonthlyIncome:     "$4,200",
			OtherParentIncome: "$3,100",
			ChildcareCosts:    "$450",
			MedicalCosts:      "$180",
			CustodySchedule:   "60/40 shared schedule",
		},
		Court: domain.ExtractionCourt{
			CourtDate:    "2024-03-22",
			CourtName:    "FULTON COUNTY FAMILY COURT",
			CourtAddress: "185 CENTRAL AVE SW, ATLANTA, GA 30303",
		},
		AI: domain.ExtractionAI{
			Confidence: 0.97,
			Notes: []string{
				"High confidence extraction.",
				"Parenting schedule and income data detected.",
			},
			QuickSummary: "Child support modification review for Fulton County with a shared 60/40 schedule, updated income figures, and documented childcare and medical expenses. Recommended focus: highlight consistent parenting time, recent income changes, and verified monthly costs.",
		},
	}
}
