package store

import (
	"context"
	"time"

	"github.com/gnames/authcheck/pkg/model"
)

// Store defines the interface for persisting the reconciliation
// snapshot. Only the source data is kept: datasets, the selected
// dataset, merges and manual flags. Authors, conflicts and warnings are
// derived again after every Load.
//
// Implementations:
// - SQLite keeps encoded snapshots in one table (default).
// - PostgreSQL keeps datasets, submissions and merges in their own
//   tables.
type Store interface {
	// Load returns the latest snapshot. An empty store returns an empty
	// snapshot and no error.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Close releases the underlying connection.
	Close() error
}

// Snapshot is the persisted part of the reconciliation state.
type Snapshot struct {
	Datasets         []model.Dataset     `json:"datasets"`
	CurrentDatasetID string              `json:"currentDatasetId"`
	AuthorMerges     []model.AuthorMerge `json:"authorMerges"`
	FlaggedEmails    []string            `json:"flaggedEmails"`
	SavedAt          time.Time           `json:"savedAt"`
}

// Backends lists supported store backends.
var Backends = []string{"sqlite", "postgres"}
