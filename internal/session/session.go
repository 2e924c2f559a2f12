// Package session holds per-visitor navigation state.
//
// The SPA threads a case record and a chosen attorney from page to page. The
// server keeps that state in an explicit, typed object keyed by the anonymous
// visitor identity, so every consuming view can guard on the fields it needs
// instead of trusting history-state shape.
package session

import (
	"errors"
	"time"

	"github.com/familybridge/familybridge/internal/domain"
	"github.com/familybridge/familybridge/internal/intake"
	gocache "github.com/patrickmn/go-cache"
)

// RedirectTarget is the canonical entry point a view sends the user to when
// required navigation state is missing.
const RedirectTarget = "/upload-ticket"

// ErrMissingState is returned by guards when a required navigation-state
// field is absent.
var ErrMissingState = errors.New("missing required navigation state")

// NavState is the navigation-carried state for one visitor.
type NavState struct {
	// Extraction is the latest document scan result, if any.
	Extraction *domain.Extraction
	// Wizard is the in-progress intake, if the visitor started one.
	Wizard *intake.Wizard
	// Case is the completed case record after wizard submission.
	Case *domain.CaseRecord
	// Attorney is the chosen attorney after matching.
	Attorney *domain.Attorney
}

// Store is an in-memory TTL store of navigation state. State evaporates after
// the session TTL; nothing here is durable.
type Store struct {
	cache *gocache.Cache
}

// NewStore creates a session store with the given TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Get returns the navigation state for a visitor, or nil if none exists.
func (s *Store) Get(visitorID string) *NavState {
	if v, found := s.cache.Get(visitorID); found {
		return v.(*NavState)
	}
	return nil
}

// GetOrCreate returns the navigation state for a visitor, creating an empty
// one if needed.
func (s *Store) GetOrCreate(visitorID string) *NavState {
	if st := s.Get(visitorID); st != nil {
		return st
	}
	st := &NavState{}
	s.cache.SetDefault(visitorID, st)
	return st
}

// Save stores the state and refreshes its TTL.
func (s *Store) Save(visitorID string, st *NavState) {
	s.cache.SetDefault(visitorID, st)
}

// Clear removes all navigation state for a visitor.
func (s *Store) Clear(visitorID string) {
	s.cache.Delete(visitorID)
}

// RequireCase returns the visitor's case record, or ErrMissingState when the
// visitor has no completed case.
func (s *Store) RequireCase(visitorID string) (*domain.CaseRecord, error) {
	st := s.Get(visitorID)
	if st == nil || st.Case == nil {
		return nil, ErrMissingState
	}
	return st.Case, nil
}

// RequireCaseAndAttorney returns both chat prerequisites, or ErrMissingState
// when either is absent.
func (s *Store) RequireCaseAndAttorney(visitorID string) (*domain.CaseRecord, *domain.Attorney, error) {
	st := s.Get(visitorID)
	if st == nil || st.Case == nil || st.Attorney == nil {
		return nil, nil, ErrMissingState
	}
	return st.Case, st.Attorney, nil
}
