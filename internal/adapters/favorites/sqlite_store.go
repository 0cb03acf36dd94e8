package favorites

import (
	"boulderhall-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed favorites store. Requires db.InitSchema.
type SqliteStore struct {
	DB *sql.DB
}

func NewSqliteStore(db *sql.DB) *SqliteStore {
	return &SqliteStore{DB: db}
}

func (s *SqliteStore) Load(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errStoreClosed
	}

	var value string
	err := s.DB.QueryRowContext(ctx, `
	SELECT value
	FROM kv_store
	WHERE key = ?;
	`, ports.FavoritesKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load favorites: query kv_store: %w", err)
	}

	return decodeNames([]byte(value))
}

func (s *SqliteStore) Save(ctx context.Context, names []string) error {
	if s.DB == nil {
		return errStoreClosed
	}

	b, err := encodeNames(names)
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO kv_store (
		key,
		value
	)
	VALUES (?, ?);
	`, ports.FavoritesKey, string(b)); err != nil {
		return fmt.Errorf("save favorites: write kv_store: %w", err)
	}

	return nil
}
