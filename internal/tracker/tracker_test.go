package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/familybridge/familybridge/internal/domain"
)

// fakeRepo implements the subset of store.Repository the tracker exercises.
type fakeRepo struct {
	row *domain.StoredCase
	err error
}

func (f *fakeRepo) GetCase(_ context.Context, caseNumber, email string) (*domain.StoredCase, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.row != nil && f.row.CaseNumber == caseNumber && f.row.Email == email {
		return f.row, nil
	}
	return nil, nil
}

func (f *fakeRepo) CreateCase(context.Context, *domain.StoredCase) error { return nil }
func (f *fakeRepo) UpdateStatus(context.Context, string, string, domain.CaseStatus) error {
	return nil
}
func (f *fakeRepo) Ping(context.Context) error { return nil }
func (f *fakeRepo) Close() error               { return nil }

func TestStageIndex(t *testing.T) {
	tests := []struct {
		name   string
		status domain.CaseStatus
		want   int
	}{
		{"Submitted", domain.StatusSubmitted, 0},
		{"Review", domain.StatusReview, 1},
		{"Strategy built", domain.StatusStrategyBuilt, 2},
		{"Attorney", domain.StatusAttorney, 3},
		{"Ready", domain.StatusReady, 4},
		{"Unknown falls back to start", domain.CaseStatus("archived"), 0},
		{"Empty falls back to start", domain.CaseStatus(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StageIndex(tt.status); got != tt.want {
				t.Errorf("Expected index %d for %q, got %d", tt.want, tt.status, got)
			}
		})
	}
}

func TestProgressPercent(t *testing.T) {
	if got := ProgressPercent(0); got != 0 {
		t.Errorf("Expected 0%% at index 0, got %v", got)
	}
	if got := ProgressPercent(2); got != 50 {
		t.Errorf("Expected 50%% at index 2, got %v", got)
	}
	if got := ProgressPercent(4); got != 100 {
		t.Errorf("Expected 100%% at index 4, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	repo := &fakeRepo{row: &domain.StoredCase{
		CaseNumber: "FC-2024-1029",
		Email:      "jordan.lee@email.com",
		Status:     domain.StatusStrategyBuilt,
	}}
	svc := NewService(repo)

	view, err := svc.Lookup(context.Background(), "FC-2024-1029", "jordan.lee@email.com")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if view.StageIndex != 2 {
		t.Errorf("Expected stage index 2, got %d", view.StageIndex)
	}
	if view.StageLabel != "Strategy Drafted" {
		t.Errorf("Expected label Strategy Drafted, got %q", view.StageLabel)
	}
	if view.ProgressPercent != 50 {
		t.Errorf("Expected 50%% progress, got %v", view.ProgressPercent)
	}
	if view.Estimated != "Oct 30, 2024" {
		t.Errorf("Expected estimated Oct 30, 2024, got %q", view.Estimated)
	}
	if len(view.Stages) != len(Stages) {
		t.Errorf("Expected all %d stages in the view, got %d", len(Stages), len(view.Stages))
	}
}

func TestLookupCompleted(t *testing.T) {
	repo := &fakeRepo{row: &domain.StoredCase{
		CaseNumber: "FC-2024-1029",
		Email:      "jordan.lee@email.com",
		Status:     domain.StatusReady,
	}}
	svc := NewService(repo)

	view, err := svc.Lookup(context.Background(), "FC-2024-1029", "jordan.lee@email.com")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if view.Estimated != "Completed" {
		t.Errorf("Expected Completed at the final stage, got %q", view.Estimated)
	}
}

func TestLookupMissingFields(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if _, err := svc.Lookup(context.Background(), "", "jordan.lee@email.com"); !errors.Is(err, ErrMissingFields) {
		t.Errorf("Expected ErrMissingFields without a case number, got %v", err)
	}
	if _, err := svc.Lookup(context.Background(), "FC-2024-1029", ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("Expected ErrMissingFields without an email, got %v", err)
	}
}

func TestLookupNotFoundVsTransport(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if _, err := svc.Lookup(context.Background(), "FC-0000-0000", "nobody@email.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for an unmatched pair, got %v", err)
	}

	boom := errors.New("connection refused")
	svc = NewService(&fakeRepo{err: boom})
	_, err := svc.Lookup(context.Background(), "FC-2024-1029", "jordan.lee@email.com")
	if errors.Is(err, ErrNotFound) {
		t.Error("Expected transport error to stay distinct from ErrNotFound")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped transport error, got %v", err)
	}
}
