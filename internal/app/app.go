// Package app builds the service components from configuration. It is the
// composition root shared by the HTTP server and the dbtool CLI.
package app

import (
	"boulderhall-service/internal/adapters/cache"
	"boulderhall-service/internal/adapters/favorites"
	"boulderhall-service/internal/adapters/location"
	"boulderhall-service/internal/adapters/rating"
	"boulderhall-service/internal/adapters/source"
	"boulderhall-service/internal/config"
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/db"
	"boulderhall-service/internal/ports"
	"boulderhall-service/internal/services"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired services and the resources they depend on.
type App struct {
	Config    config.Config
	Catalog   *services.Catalog
	Favorites *services.Favorites
	Locator   ports.LocationProvider
	// Snapshot is nil when HallsSnapshot is disabled.
	Snapshot ports.HallSnapshot

	log     *zap.Logger
	sqlite  *sql.DB
	pg      *sql.DB
	closers []func() error
}

// Build opens the configured stores and returns a ready App. Favorites are
// loaded before returning; a load failure is logged and leaves the set empty.
// The caller must Close the App.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (_ *App, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Config: cfg, log: log}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	store, err := a.favoritesStore(ctx)
	if err != nil {
		return nil, err
	}

	upstream, err := a.hallSource()
	if err != nil {
		return nil, err
	}

	var halls ports.HallSource = upstream
	if cfg.HallsSnapshot {
		if a.Snapshot, err = a.hallSnapshot(); err != nil {
			return nil, err
		}
		halls = source.NewSnapshotSource(upstream, a.Snapshot, log)
	}

	rater, err := rating.New(cfg.RatingMode)
	if err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}

	if a.Locator, err = a.locator(); err != nil {
		return nil, err
	}

	a.Catalog = services.NewCatalog(halls, rater, log)
	a.Favorites = services.NewFavorites(store, log)
	_ = a.Favorites.Load(ctx)

	return a, nil
}

// Close releases database and cache connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// SQLite returns the shared SQLite handle, opening it and creating the schema
// on first use.
func (a *App) SQLite() (*sql.DB, error) {
	if a.sqlite != nil {
		return a.sqlite, nil
	}

	path := a.Config.DBPath
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("build app: create db dir for %q: %w", path, err)
		}
	}

	conn, err := db.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, conn.Close)

	if err := db.InitSchema(conn); err != nil {
		return nil, err
	}
	a.sqlite = conn
	return conn, nil
}

// Postgres returns the shared Postgres handle, opening it and creating the
// schema on first use.
func (a *App) Postgres() (*sql.DB, error) {
	if a.pg != nil {
		return a.pg, nil
	}

	conn, err := db.Open(a.Config.DatabaseURL)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, conn.Close)

	if err := db.InitSchema(conn); err != nil {
		return nil, err
	}
	a.pg = conn
	return conn, nil
}

func (a *App) favoritesStore(ctx context.Context) (ports.FavoritesStore, error) {
	switch a.Config.FavoritesStore {
	case "memory":
		return favorites.NewMemoryStore(), nil
	case "sqlite":
		conn, err := a.SQLite()
		if err != nil {
			return nil, err
		}
		return favorites.NewSqliteStore(conn), nil
	case "postgres":
		conn, err := a.Postgres()
		if err != nil {
			return nil, err
		}
		return favorites.NewSQLStore(conn), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr})
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			a.log.Warn("redis unreachable, favorites will not persist until it recovers",
				zap.String("addr", a.Config.RedisAddr), zap.Error(err))
		}
		return favorites.NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("build app: unknown favorites store %q", a.Config.FavoritesStore)
	}
}

func (a *App) hallSource() (ports.HallSource, error) {
	cfg := a.Config
	switch cfg.HallsSource {
	case "http":
		return source.NewHTTPSource(cfg.HallsURL,
			source.WithTimeout(cfg.HTTPTimeout),
			source.WithMaxAttempts(cfg.HallsMaxAttempts),
			source.WithLogger(a.log),
		)
	case "file":
		return source.NewFileSource(cfg.HallsFile)
	case "s3":
		return source.NewS3Source(source.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
			Bucket:    cfg.S3.Bucket,
			Object:    cfg.S3.Object,
		}, a.log)
	default:
		return nil, fmt.Errorf("build app: unknown halls source %q", cfg.HallsSource)
	}
}

// The snapshot lives next to the favorites when they are in Postgres, and in
// the SQLite database otherwise.
func (a *App) hallSnapshot() (ports.HallSnapshot, error) {
	if a.Config.FavoritesStore == "postgres" {
		conn, err := a.Postgres()
		if err != nil {
			return nil, err
		}
		return cache.NewSQLHallSnapshot(conn, a.log), nil
	}

	conn, err := a.SQLite()
	if err != nil {
		return nil, err
	}
	return cache.NewSqliteHallSnapshot(conn, a.log), nil
}

func (a *App) locator() (ports.LocationProvider, error) {
	cfg := a.Config
	switch cfg.LocationProvider {
	case "fixed":
		return location.Fixed{Coordinates: domain.Coordinates{Lat: cfg.FixedLat, Lon: cfg.FixedLon}}, nil
	case "ip":
		return location.NewIPLookup(cfg.LocationURL, cfg.HTTPTimeout, a.log), nil
	case "denied":
		return location.Denied{}, nil
	default:
		return nil, fmt.Errorf("build app: unknown location provider %q", cfg.LocationProvider)
	}
}
