package favorites

import (
	"boulderhall-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLStore is the Postgres favorites store, used through the pgx driver.
// Requires db.InitSchema.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) Load(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errStoreClosed
	}

	var value string
	err := s.DB.QueryRowContext(ctx, `
	SELECT value
	FROM kv_store
	WHERE key = $1;
	`, ports.FavoritesKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load favorites: query kv_store: %w", err)
	}

	return decodeNames([]byte(value))
}

func (s *SQLStore) Save(ctx context.Context, names []string) error {
	if s.DB == nil {
		return errStoreClosed
	}

	b, err := encodeNames(names)
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT INTO kv_store (key, value)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value;
	`, ports.FavoritesKey, string(b)); err != nil {
		return fmt.Errorf("save favorites: write kv_store: %w", err)
	}

	return nil
}
