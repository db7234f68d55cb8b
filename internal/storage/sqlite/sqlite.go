// Package sqlite implements the action log on a SQLite database. Each
// dispatch record becomes one row; the append order is the row order. A
// file lock next to the database keeps concurrent CLI invocations from
// interleaving writes.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/steveyegge/wbs/internal/dispatch"
)

const schema = `
CREATE TABLE IF NOT EXISTS actions (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	action_id   TEXT NOT NULL,
	action_type TEXT NOT NULL,
	payload     TEXT NOT NULL,
	actor       TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	revision    INTEGER NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	applied_at  TEXT NOT NULL
);
`

// Store is a SQLite-backed action log.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
}

// New opens (creating if needed) the action log at path. The store takes an
// exclusive file lock beside the database for its lifetime; a second open
// of the same path fails until the first store is closed.
func New(ctx context.Context, path string) (*Store, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring database lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("database %s is locked by another process", path)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)")
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db, lock: lock}, nil
}

// AppendRecord writes one dispatch record to the log.
func (s *Store) AppendRecord(ctx context.Context, rec dispatch.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO actions (action_id, action_type, payload, actor, created_at, revision, error, applied_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Action.ID,
		string(rec.Action.Type),
		string(rec.Action.Payload),
		rec.Action.Actor,
		rec.Action.CreatedAt.UTC().Format(time.RFC3339Nano),
		rec.Revision,
		rec.Error,
		rec.AppliedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending action %s: %w", rec.Action.ID, err)
	}
	return nil
}

// ListRecords returns every record in append order.
func (s *Store) ListRecords(ctx context.Context) ([]dispatch.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT action_id, action_type, payload, actor, created_at, revision, error, applied_at
		 FROM actions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}
	defer rows.Close()

	var records []dispatch.Record
	for rows.Next() {
		var (
			rec                  dispatch.Record
			typ                  string
			payload              string
			createdAt, appliedAt string
		)
		if err := rows.Scan(&rec.Action.ID, &typ, &payload, &rec.Action.Actor,
			&createdAt, &rec.Revision, &rec.Error, &appliedAt); err != nil {
			return nil, fmt.Errorf("scanning action row: %w", err)
		}
		rec.Action.Type = dispatch.ActionType(typ)
		rec.Action.Payload = []byte(payload)
		if rec.Action.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at for %s: %w", rec.Action.ID, err)
		}
		if rec.AppliedAt, err = time.Parse(time.RFC3339Nano, appliedAt); err != nil {
			return nil, fmt.Errorf("parsing applied_at for %s: %w", rec.Action.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading action rows: %w", err)
	}
	return records, nil
}

// CountActions returns the number of records in the log.
func (s *Store) CountActions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM actions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting actions: %w", err)
	}
	return n, nil
}

// Close closes the database and releases the file lock.
func (s *Store) Close() error {
	err := s.db.Close()
	if unlockErr := s.lock.Unlock(); err == nil {
		err = unlockErr
	}
	return err
}
