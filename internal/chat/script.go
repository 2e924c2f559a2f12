// Package chat implements the simulated attorney chat: a WebSocket
// conversation whose replies come from an ordered keyword rule ladder, not a
// human or a model.
package chat

import (
	"fmt"
	"strings"

	"github.com/familybridge/familybridge/internal/domain"
)

// Rule is one (predicate, response) pair in the reply ladder. Rules are
// evaluated top to bottom and the first match wins; there is no combination
// logic.
type Rule struct {
	Name     string
	Keywords []string
	Reply    func(c *domain.CaseRecord, a *domain.Attorney) string
}

func (r *Rule) matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Script is the ordered reply ladder plus the fallback acknowledgment.
type Script struct {
	rules    []Rule
	fallback func(c *domain.CaseRecord, a *domain.Attorney) string
}

// DefaultScript returns the scripted attorney. Precedence is part of the
// contract: a message containing both "cost" and "court" gets the fee reply.
func DefaultScript() *Script {
	return &Script{
		rules: []Rule{
			{
				Name:     "fee",
				Keywords: []string{"cost", "price", "fee"},
				Reply: func(_ *domain.CaseRecord, a *domain.Attorney) string {
					return fmt.Sprintf("My flat fee of %s covers the review and preparation steps. If additional filings are needed, we'll discuss them first.", a.Fee)
				},
			},
			{
				Name:     "court",
				Keywords: []string{"court", "date"},
				Reply: func(c *domain.CaseRecord, _ *domain.Attorney) string {
					courtDate := c.CourtDate
					if courtDate == "" {
						courtDate = "a future date"
					}
					return fmt.Sprintf("Your court date is currently set for %s. We'll confirm the schedule once the court updates the docket.", courtDate)
				},
			},
			{
				Name:     "support",
				Keywords: []string{"support", "amount", "income"},
				Reply: func(_ *domain.CaseRecord, _ *domain.Attorney) string {
					return "We'll focus on accurate income documentation and child-related expenses to support a fair calculation."
				},
			},
			{
				Name:     "guarantee",
				Keywords: []string{"guarantee"},
				Reply: func(_ *domain.CaseRecord, _ *domain.Attorney) string {
					return "While I can't guarantee a specific outcome, I can prepare a strong, well-documented case for the court."
				},
			},
		},
		fallback: func(_ *domain.CaseRecord, _ *domain.Attorney) string {
			return "I understand. I'll make a note of that in your file."
		},
	}
}

// Reply picks the scripted response for a user message.
func (s *Script) Reply(text string, c *domain.CaseRecord, a *domain.Attorney) string {
	lowered := strings.ToLower(text)
	for i := range s.rules {
		if s.rules[i].matches(lowered) {
			return s.rules[i].Reply(c, a)
		}
	}
	return s.fallback(c, a)
}

// MatchedRule returns the name of the rule a message would hit, or "" for the
// fallback. Used by logging.
func (s *Script) MatchedRule(text string) string {
	lowered := strings.ToLower(text)
	for i := range s.rules {
		if s.rules[i].matches(lowered) {
			return s.rules[i].Name
		}
	}
	return ""
}

// Greeting builds the one scripted opening message, interpolated with case
// and attorney fields.
func Greeting(c *domain.CaseRecord, a *domain.Attorney) string {
	matter := c.ChildName
	if matter == "" {
		matter = "your child support matter"
	}
	area := c.City
	if area == "" {
		area = "your area"
	}
	return fmt.Sprintf("Hello! I'm %s. I've received your case file for %s in %s. I'm reviewing the documents now. Do you have any specific questions about the support request?", a.FirstName(), matter, area)
}
