package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/familybridge/familybridge/internal/domain"
	"github.com/familybridge/familybridge/internal/store"
)

var (
	// ErrMissingFields means the search form lacked a case number or email.
	ErrMissingFields = errors.New("case number and email are both required")
	// ErrNotFound means no row matched the exact (case number, email) pair.
	ErrNotFound = errors.New("case not found")
)

// StatusView is the tracker's rendering of one persisted case.
type StatusView struct {
	Case            *domain.StoredCase `json:"case"`
	StageIndex      int                `json:"stageIndex"`
	StageLabel      string             `json:"stageLabel"`
	ProgressPercent float64            `json:"progressPercent"`
	NextSteps       string             `json:"nextSteps"`
	Estimated       string             `json:"estimatedCompletion"`
	Stages          []Stage            `json:"stages"`
}

// Service performs case status lookups.
type Service struct {
	repo store.Repository
}

// NewService creates a tracker service backed by the case repository.
func NewService(repo store.Repository) *Service {
	return &Service{repo: repo}
}

// Lookup finds the case for an exact (case number, email) pair and computes
// its stage position. ErrNotFound and transport errors are distinct: the
// caller words the failure notification differently for each, but neither
// changes tracker state.
func (s *Service) Lookup(ctx context.Context, caseNumber, email string) (*StatusView, error) {
	if caseNumber == "" || email == "" {
		return nil, ErrMissingFields
	}

	c, err := s.repo.GetCase(ctx, caseNumber, email)
	if err != nil {
		return nil, fmt.Errorf("case lookup: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}

	idx := StageIndex(c.Status)
	view := &StatusView{
		Case:            c,
		StageIndex:      idx,
		StageLabel:      Stages[idx].Label,
		ProgressPercent: ProgressPercent(idx),
		NextSteps:       Stages[idx].NextSteps,
		Estimated:       "Oct 30, 2024",
		Stages:          Stages,
	}
	if idx == len(Stages)-1 {
		view.Estimated = "Completed"
	}
	return view, nil
}
