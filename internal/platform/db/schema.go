package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the tables used by the SQL adapters. The DDL is valid for
// both SQLite and Postgres and safe to run repeatedly.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createKVStoreQuery := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	createHallSnapshotQuery := `
	CREATE TABLE IF NOT EXISTS hall_snapshot (
		position INTEGER NOT NULL,
		name TEXT PRIMARY KEY,
		city TEXT NOT NULL,
		province TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_hall_snapshot_position
	ON hall_snapshot(position);
	`

	statements := []string{
		createKVStoreQuery,
		createHallSnapshotQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
