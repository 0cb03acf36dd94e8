package cache

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/obs"
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// SQLHallSnapshot is the Postgres hall snapshot, used through the pgx driver.
type SQLHallSnapshot struct {
	DB  *sql.DB
	log *zap.Logger
}

func NewSQLHallSnapshot(db *sql.DB, log *zap.Logger) *SQLHallSnapshot {
	if log == nil {
		log = zap.NewNop()
	}
	return &SQLHallSnapshot{DB: db, log: log}
}

func (s *SQLHallSnapshot) LoadHalls(ctx context.Context) (_ []domain.Hall, err error) {
	defer obs.Time(ctx, s.log, "snapshot.sql.LoadHalls")(&err)

	if s.DB == nil {
		return nil, errNilDB
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT name, city, province, lat, lon
	FROM hall_snapshot
	ORDER BY position;
	`)
	if err != nil {
		return nil, fmt.Errorf("load hall snapshot: query hall_snapshot table: %w", err)
	}
	defer rows.Close()

	return scanHalls(rows)
}

func (s *SQLHallSnapshot) SaveHalls(ctx context.Context, halls []domain.Hall) (err error) {
	defer obs.Time(ctx, s.log, "snapshot.sql.SaveHalls")(&err)

	if s.DB == nil {
		return errNilDB
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save hall snapshot: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM hall_snapshot;`); err != nil {
		return fmt.Errorf("save hall snapshot: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO hall_snapshot (position, name, city, province, lat, lon)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (name) DO UPDATE
	SET position = EXCLUDED.position,
		city = EXCLUDED.city,
		province = EXCLUDED.province,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
	if err != nil {
		return fmt.Errorf("save hall snapshot: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, h := range uniqueHalls(halls) {
		if _, err := stmt.ExecContext(ctx, i, h.Name, h.City, h.Province, h.Latitude, h.Longitude); err != nil {
			return fmt.Errorf("save hall snapshot name=%q: %w", h.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save hall snapshot commit: %w", err)
	}

	return nil
}
