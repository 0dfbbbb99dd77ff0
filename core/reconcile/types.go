package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when no item matches a lookup.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned by Store.Insert when the natural key is taken.
	// The engine consumes it; callers of Reconcile never see it.
	ErrDuplicateKey = errors.New("duplicate key")

	// errDryRun rolls back a dry-run transaction.
	errDryRun = errors.New("dry run")
)

// Outcome is the decision taken for one reconciled candidate.
type Outcome string

const (
	// Inserted means the candidate's key was new and the candidate was stored.
	Inserted Outcome = "inserted"
	// Updated means the candidate was newer and overwrote the stored item.
	Updated Outcome = "updated"
	// Skipped means the stored item was at least as fresh and was left untouched.
	Skipped Outcome = "skipped"
)

// Options controls batch behaviour.
type Options struct {
	// DryRun runs the batch inside a transaction that is always rolled back.
	// The summary is exact, but nothing is persisted.
	DryRun bool
}

// RowError describes a batch row that could not be reconciled.
type RowError struct {
	// Row is the 1-based line number in the source, header included.
	Row int `json:"row"`

	// Key is the natural key of the row when it could be read.
	Key string `json:"key"`

	// Err is the underlying parse or validation error.
	Err error `json:"-"`
}

func (e RowError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("row %d (%s): %v", e.Row, e.Key, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Summary provides aggregate counts for one batch.
type Summary struct {
	// Inserted counts candidates stored under a new key.
	Inserted int `json:"inserted"`

	// Updated counts candidates that overwrote an older stored item.
	Updated int `json:"updated"`

	// Skipped counts candidates that were not newer than the stored item.
	Skipped int `json:"skipped"`

	// Failed counts rows rejected before or during reconciliation.
	Failed int `json:"failed"`

	// Errors holds one entry per failed row, in source order.
	Errors []RowError `json:"errors,omitempty"`

	// DryRun is set when nothing from this batch was persisted.
	DryRun bool `json:"dry_run"`
}

// Add records the outcome of one successful reconcile.
func (s *Summary) Add(outcome Outcome) {
	switch outcome {
	case Inserted:
		s.Inserted++
	case Updated:
		s.Updated++
	case Skipped:
		s.Skipped++
	}
}

// Fail records a rejected row.
func (s *Summary) Fail(rowErr RowError) {
	s.Failed++
	s.Errors = append(s.Errors, rowErr)
}

// Total returns the number of rows seen.
func (s *Summary) Total() int {
	return s.Inserted + s.Updated + s.Skipped + s.Failed
}
