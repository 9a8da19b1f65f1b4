package storage

// Repository defines the complete storage interface.
// This interface allows swapping implementations (SQLite, PostgreSQL, etc.)
// and makes testing with fakes straightforward.
type Repository interface {
	// SaveRun persists a run together with its per-transaction outcomes.
	SaveRun(run *ReconciliationRun, outcomes []*MatchOutcome) error

	// GetRun retrieves a run by ID; nil when unknown.
	GetRun(id string) (*ReconciliationRun, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]*ReconciliationRun, error)

	// GetRunOutcomes returns the per-transaction outcomes of a run.
	GetRunOutcomes(runID string) ([]*MatchOutcome, error)

	Close() error
}
