package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/familybridge/familybridge/internal/domain"
)

func TestPlansOffering(t *testing.T) {
	if len(Plans) != 2 {
		t.Fatalf("Expected 2 plans, got %d", len(Plans))
	}
	if Plans[0].Type != domain.PlanAIBasic || Plans[0].Price != "$49" {
		t.Errorf("Expected ai-basic at $49 first, got %+v", Plans[0])
	}
	if Plans[1].Type != domain.PlanLegalFull || Plans[1].Price != "$149" {
		t.Errorf("Expected legal-full at $149 second, got %+v", Plans[1])
	}
	if !Plans[1].Popular {
		t.Error("Expected the attorney plan to carry the popular badge")
	}
}

func TestCheckoutProcess(t *testing.T) {
	co := NewCheckout(0)
	rec := &domain.CaseRecord{CaseNumber: "FC-2024-1029"}

	if err := co.Process(context.Background(), rec, domain.PlanLegalFull); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if rec.PlanType != domain.PlanLegalFull {
		t.Errorf("Expected record tagged legal-full, got %q", rec.PlanType)
	}
}

func TestCheckoutUnknownPlan(t *testing.T) {
	co := NewCheckout(0)
	rec := &domain.CaseRecord{CaseNumber: "FC-2024-1029"}

	if err := co.Process(context.Background(), rec, "premium-plus"); !errors.Is(err, ErrUnknownPlan) {
		t.Errorf("Expected ErrUnknownPlan, got %v", err)
	}
	if rec.PlanType != "" {
		t.Errorf("Expected record untouched on failure, got %q", rec.PlanType)
	}
}

func TestCheckoutRequiresIdentity(t *testing.T) {
	co := NewCheckout(0)

	if err := co.Process(context.Background(), &domain.CaseRecord{}, domain.PlanAIBasic); !errors.Is(err, ErrNoIdentity) {
		t.Errorf("Expected ErrNoIdentity, got %v", err)
	}

	// Email alone is a valid identity.
	rec := &domain.CaseRecord{Email: "jordan.lee@email.com"}
	if err := co.Process(context.Background(), rec, domain.PlanAIBasic); err != nil {
		t.Errorf("Expected email-only identity to pass, got %v", err)
	}
}

func TestCheckoutCancellation(t *testing.T) {
	co := NewCheckout(time.Hour)
	rec := &domain.CaseRecord{CaseNumber: "FC-2024-1029"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := co.Process(ctx, rec, domain.PlanAIBasic); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if rec.PlanType != "" {
		t.Errorf("Expected cancelled payment to discard the tag, got %q", rec.PlanType)
	}
}
