package iostore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	authcheck "github.com/gnames/authcheck/pkg"
	"github.com/gnames/authcheck/pkg/store"
	"github.com/gnames/gnfmt"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// HistorySize is the number of snapshots kept in SQLite.
const HistorySize = 20

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	saved_at TEXT NOT NULL,
	version TEXT NOT NULL,
	data BLOB NOT NULL
)`

// sqliteStore keeps JSON encoded snapshots in one table. The latest row
// wins, older rows are kept as a short history.
type sqliteStore struct {
	db   *sql.DB
	path string
	enc  gnfmt.GNjson
}

// NewSQLite opens or creates a SQLite store at path.
func NewSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError("sqlite", path, err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, OpenError("sqlite", path, err)
	}
	return &sqliteStore{db: db, path: path}, nil
}

// Load returns the latest snapshot.
func (s *sqliteStore) Load(ctx context.Context) (*store.Snapshot, error) {
	var data []byte
	q := "SELECT data FROM snapshots ORDER BY id DESC LIMIT 1"
	err := s.db.QueryRowContext(ctx, q).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return &store.Snapshot{}, nil
	}
	if err != nil {
		return nil, LoadError(s.path, err)
	}

	var res store.Snapshot
	if err = s.enc.Decode(data, &res); err != nil {
		return nil, LoadError(s.path, err)
	}
	return &res, nil
}

// Save appends the snapshot and trims history.
func (s *sqliteStore) Save(ctx context.Context, snap *store.Snapshot) error {
	data, err := s.enc.Encode(snap)
	if err != nil {
		return SaveError(s.path, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaveError(s.path, err)
	}
	defer tx.Rollback()

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO snapshots (saved_at, version, data) VALUES (?, ?, ?)",
		savedAt.UTC().Format(time.RFC3339Nano), authcheck.Version, data,
	)
	if err != nil {
		return SaveError(s.path, err)
	}

	_, err = tx.ExecContext(ctx, `
DELETE FROM snapshots
WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)`,
		HistorySize,
	)
	if err != nil {
		return SaveError(s.path, err)
	}

	if err = tx.Commit(); err != nil {
		return SaveError(s.path, err)
	}
	return nil
}

// Close closes the database.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
