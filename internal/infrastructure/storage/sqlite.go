// Package storage persists reconciliation runs and their per-transaction
// outcomes. The matching engine itself performs no I/O; only the API and
// CLI callers write here.
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Storage provides SQLite database access for reconciliation runs.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveRun persists a run and its outcomes in a single transaction.
func (s *Storage) SaveRun(run *ReconciliationRun, outcomes []*MatchOutcome) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
	INSERT INTO reconciliation_runs
	(id, started_at, finished_at, total_transactions, total_attachments,
	 matched_transactions, unmatched_transactions, unexplained_attachments, dry_run)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt,
		run.FinishedAt,
		run.TotalTransactions,
		run.TotalAttachments,
		run.MatchedTransactions,
		run.UnmatchedTransactions,
		run.UnexplainedAttachments,
		run.DryRun,
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}

	for _, o := range outcomes {
		_, err = tx.Exec(`
		INSERT INTO match_outcomes
		(run_id, tx_date, tx_amount, tx_contact, tx_reference,
		 matched, matched_by, confidence, counterparty, attachment_reference)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			o.TxDate,
			o.TxAmount,
			o.TxContact,
			o.TxReference,
			o.Matched,
			o.MatchedBy,
			o.Confidence,
			o.Counterparty,
			o.AttachmentRef,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save outcome for run %s: %w", run.ID, err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run by ID. Returns nil without error when unknown.
func (s *Storage) GetRun(id string) (*ReconciliationRun, error) {
	row := s.db.QueryRow(`
	SELECT id, started_at, finished_at, total_transactions, total_attachments,
	       matched_transactions, unmatched_transactions, unexplained_attachments, dry_run
	FROM reconciliation_runs WHERE id = ?`, id)

	run := &ReconciliationRun{}
	err := row.Scan(
		&run.ID,
		&run.StartedAt,
		&run.FinishedAt,
		&run.TotalTransactions,
		&run.TotalAttachments,
		&run.MatchedTransactions,
		&run.UnmatchedTransactions,
		&run.UnexplainedAttachments,
		&run.DryRun,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Storage) ListRuns(limit int) ([]*ReconciliationRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
	SELECT id, started_at, finished_at, total_transactions, total_attachments,
	       matched_transactions, unmatched_transactions, unexplained_attachments, dry_run
	FROM reconciliation_runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*ReconciliationRun
	for rows.Next() {
		run := &ReconciliationRun{}
		if err := rows.Scan(
			&run.ID,
			&run.StartedAt,
			&run.FinishedAt,
			&run.TotalTransactions,
			&run.TotalAttachments,
			&run.MatchedTransactions,
			&run.UnmatchedTransactions,
			&run.UnexplainedAttachments,
			&run.DryRun,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRunOutcomes returns the per-transaction outcomes of a run.
func (s *Storage) GetRunOutcomes(runID string) ([]*MatchOutcome, error) {
	rows, err := s.db.Query(`
	SELECT id, run_id, tx_date, tx_amount, tx_contact, tx_reference,
	       matched, matched_by, confidence, counterparty, attachment_reference
	FROM match_outcomes WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []*MatchOutcome
	for rows.Next() {
		o := &MatchOutcome{}
		if err := rows.Scan(
			&o.ID,
			&o.RunID,
			&o.TxDate,
			&o.TxAmount,
			&o.TxContact,
			&o.TxReference,
			&o.Matched,
			&o.MatchedBy,
			&o.Confidence,
			&o.Counterparty,
			&o.AttachmentRef,
		); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, rows.Err()
}
