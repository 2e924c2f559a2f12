// Package plan implements plan selection: a two-option branch that tags the
// case record with a plan type after a simulated checkout.
package plan

import (
	"context"
	"errors"
	"time"

	"github.com/familybridge/familybridge/internal/domain"
)

// Plan is one of the two fixed-price offerings.
type Plan struct {
	Type     domain.PlanType `json:"type"`
	Name     string          `json:"name"`
	Price    string          `json:"price"`
	Tagline  string          `json:"tagline"`
	Features []string        `json:"features"`
	Popular  bool            `json:"popular"`
}

// Plans is the fixed offering. Order matters for display.
var Plans = []Plan{
	{
		Type:    domain.PlanAIBasic,
		Name:    "AI Strategy Draft",
		Price:   "$49",
		Tagline: "Best for quick clarity",
		Features: []string{
			"AI-generated court strategy",
			"Document checklist + timeline",
			"Talking points for hearings",
		},
	},
	{
		Type:    domain.PlanLegalFull,
		Name:    "Attorney Review + Match",
		Price:   "$149",
		Tagline: "For complex cases",
		Features: []string{
			"Attorney review within 24 hours",
			"Custom filing checklist",
			"Direct attorney messaging",
			"Court prep session",
		},
		Popular: true,
	},
}

var (
	// ErrUnknownPlan means the requested plan type is not offered.
	ErrUnknownPlan = errors.New("unknown plan type")
	// ErrNoIdentity means the case record reached plan selection without a
	// case number or email to key it by.
	ErrNoIdentity = errors.New("case record has no identity")
)

// Checkout simulates the payment step. There is no real gateway and no
// failure path: after the configured delay the case is tagged and the flow
// moves on.
type Checkout struct {
	Delay time.Duration
}

// NewCheckout creates the simulated checkout.
func NewCheckout(delay time.Duration) *Checkout {
	return &Checkout{Delay: delay}
}

// Process tags the case with the chosen plan after the simulated payment
// delay. Cancelling the context mid-"payment" discards the tag.
func (c *Checkout) Process(ctx context.Context, rec *domain.CaseRecord, pt domain.PlanType) error {
	if !pt.IsValid() {
		return ErrUnknownPlan
	}
	if !rec.HasIdentity() {
		return ErrNoIdentity
	}
	if c.Delay > 0 {
		timer := time.NewTimer(c.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	rec.PlanType = pt
	return nil
}
