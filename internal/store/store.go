// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/familybridge/familybridge/internal/domain"
)

// Repository defines the interface for persisting case records. Lookups that
// find no row return (nil, nil); a non-nil error always means a transport or
// storage failure, which callers surface differently from "not found".
type Repository interface {
	// GetCase retrieves a case by its exact (case number, email) pair.
	GetCase(ctx context.Context, caseNumber, email string) (*domain.StoredCase, error)

	// CreateCase inserts a new case row. An existing (case_number, email)
	// pair is overwritten; intake resubmission replaces the earlier row.
	CreateCase(ctx context.Context, c *domain.StoredCase) error

	// UpdateStatus advances the lifecycle stage of a persisted case.
	UpdateStatus(ctx context.Context, caseNumber, email string, status domain.CaseStatus) error

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
