package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/familybridge/familybridge/internal/domain"
	"github.com/familybridge/familybridge/internal/shared"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS cases (
		id TEXT PRIMARY KEY,
		case_number TEXT NOT NULL,
		email TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'submitted',
		parent_name TEXT NOT NULL DEFAULT '',
		child_name TEXT NOT NULL DEFAULT '',
		custody_schedule TEXT NOT NULL DEFAULT '',
		monthly_income TEXT NOT NULL DEFAULT '',
		other_parent_income TEXT NOT NULL DEFAULT '',
		childcare_costs TEXT NOT NULL DEFAULT '',
		medical_costs TEXT NOT NULL DEFAULT '',
		court_name TEXT NOT NULL DEFAULT '',
		court_date TEXT NOT NULL DEFAULT '',
		plan_type TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		UNIQUE(case_number, email)
	);
	CREATE INDEX IF NOT EXISTS idx_cases_status ON cases(status);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const caseColumns = `id, case_number, email, status, parent_name, child_name,
	custody_schedule, monthly_income, other_parent_income, childcare_costs,
	medical_costs, court_name, court_date, plan_type, created_at, updated_at`

// GetCase retrieves a case by its exact (case number, email) pair.
func (s *SQLiteStore) GetCase(ctx context.Context, caseNumber, email string) (*domain.StoredCase, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE case_number = ? AND email = ?`

	row := s.db.QueryRowContext(ctx, query, caseNumber, email)

	var c domain.StoredCase
	var createdAt, updatedAt int64

	err := row.Scan(
		&c.ID, &c.CaseNumber, &c.Email, &c.Status, &c.ParentName, &c.ChildName,
		&c.CustodySchedule, &c.MonthlyIncome, &c.OtherParentIncome,
		&c.ChildcareCosts, &c.MedicalCosts, &c.CourtName, &c.CourtDate,
		&c.PlanType, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan case row: %w", err)
	}

	c.CreatedAt = time.Unix(createdAt, 0)
	c.UpdatedAt = time.Unix(updatedAt, 0)

	return &c, nil
}

// CreateCase inserts a new case row, replacing any earlier submission for the
// same (case_number, email) pair.
func (s *SQLiteStore) CreateCase(ctx context.Context, c *domain.StoredCase) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.StatusSubmitted
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	query := `
	INSERT INTO cases (` + caseColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(case_number, email) DO UPDATE SET
		status = excluded.status,
		parent_name = excluded.parent_name,
		child_name = excluded.child_name,
		custody_schedule = excluded.custody_schedule,
		monthly_income = excluded.monthly_income,
		other_parent_income = excluded.other_parent_income,
		childcare_costs = excluded.childcare_costs,
		medical_costs = excluded.medical_costs,
		court_name = excluded.court_name,
		court_date = excluded.court_date,
		plan_type = excluded.plan_type,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.CaseNumber, c.Email, c.Status, c.ParentName, c.ChildName,
		c.CustodySchedule, c.MonthlyIncome, c.OtherParentIncome,
		c.ChildcareCosts, c.MedicalCosts, c.CourtName, c.CourtDate,
		c.PlanType, c.CreatedAt.Unix(), c.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

// UpdateStatus advances the lifecycle stage of a persisted case.
// Retries with exponential backoff on SQLite concurrency errors.
func (s *SQLiteStore) UpdateStatus(ctx context.Context, caseNumber, email string, status domain.CaseStatus) error {
	maxRetries := 3
	baseDelay := 100 * time.Millisecond

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		lastErr = s.updateStatusOnce(ctx, caseNumber, email, status)
		if lastErr == nil {
			return nil
		}
		if shared.IsSQLiteConflictError(lastErr) && i < maxRetries-1 {
			delay := baseDelay * time.Duration(1<<i)
			slog.Debug("UpdateStatus hit SQLITE_BUSY, retrying",
				"case_number", caseNumber,
				"attempt", i+1,
				"delay", delay)
			time.Sleep(delay)
			continue
		}
		break
	}
	return lastErr
}

func (s *SQLiteStore) updateStatusOnce(ctx context.Context, caseNumber, email string, status domain.CaseStatus) error {
	query := `UPDATE cases SET status = ?, updated_at = ? WHERE case_number = ? AND email = ?`
	result, err := s.db.ExecContext(ctx, query, status, time.Now().Unix(), caseNumber, email)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("case not found: %s", caseNumber)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
