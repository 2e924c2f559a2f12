package chat

import (
	"strings"
	"testing"

	"github.com/familybridge/familybridge/internal/domain"
)

func testCase() *domain.CaseRecord {
	return &domain.CaseRecord{
		ChildName: "AVERY LEE",
		City:      "ATLANTA",
		CourtDate: "2024-03-22",
	}
}

func testAttorney() *domain.Attorney {
	return &domain.Attorney{Name: "Alicia Brooks", Fee: "$249"}
}

func TestScriptRuleLadder(t *testing.T) {
	s := DefaultScript()

	tests := []struct {
		name     string
		message  string
		wantRule string
	}{
		{"Fee keyword", "what is your fee?", "fee"},
		{"Cost keyword", "How much does this COST", "fee"},
		{"Price keyword", "price please", "fee"},
		{"Court keyword", "when is my court appearance", "court"},
		{"Date keyword", "is the date fixed?", "court"},
		{"Support keyword", "how is support calculated", "support"},
		{"Income keyword", "my income changed recently", "support"},
		{"Guarantee keyword", "can you guarantee a win", "guarantee"},
		{"Fee wins over court", "what does court cost", "fee"},
		{"Court wins over support", "court date and support amount", "court"},
		{"No match", "thanks, talk soon", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.MatchedRule(tt.message); got != tt.wantRule {
				t.Errorf("Expected rule %q for %q, got %q", tt.wantRule, tt.message, got)
			}
		})
	}
}

func TestScriptReplies(t *testing.T) {
	s := DefaultScript()
	c, a := testCase(), testAttorney()

	reply := s.Reply("what is the fee?", c, a)
	if !strings.Contains(reply, "$249") {
		t.Errorf("Expected fee reply to carry the attorney's fee, got %q", reply)
	}

	reply = s.Reply("when is court?", c, a)
	if !strings.Contains(reply, "2024-03-22") {
		t.Errorf("Expected court reply to carry the court date, got %q", reply)
	}

	// Missing court date falls back to the generic phrasing.
	reply = s.Reply("when is court?", &domain.CaseRecord{}, a)
	if !strings.Contains(reply, "a future date") {
		t.Errorf("Expected generic date phrasing without a court date, got %q", reply)
	}

	reply = s.Reply("hello there", c, a)
	if reply != "I understand. I'll make a note of that in your file." {
		t.Errorf("Expected fallback acknowledgment, got %q", reply)
	}
}

func TestGreeting(t *testing.T) {
	got := Greeting(testCase(), testAttorney())
	if !strings.Contains(got, "Alicia") {
		t.Errorf("Expected greeting to use the attorney's first name, got %q", got)
	}
	if !strings.Contains(got, "AVERY LEE") || !strings.Contains(got, "ATLANTA") {
		t.Errorf("Expected greeting to interpolate child and city, got %q", got)
	}

	got = Greeting(&domain.CaseRecord{}, testAttorney())
	if !strings.Contains(got, "your child support matter") || !strings.Contains(got, "your area") {
		t.Errorf("Expected greeting fallbacks for an empty case, got %q", got)
	}
}
