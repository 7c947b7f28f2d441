// Package migration applies the SQL schema under migrations/ with golang-migrate.
package migration

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"marketplace/config"
	"marketplace/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Register runs pending migrations on start when enabled in config.
func Register(params Params) {
	cfg := params.Config.Migration
	if cfg == nil || !cfg.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			db, err := sql.Open("pgx", cfg.DSN)
			if err != nil {
				return errors.Wrap(err, "failed to open migration connection")
			}
			defer db.Close()

			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping migration connection")
			}

			path, err := resolvePath(cfg.Path, "../", "../../")
			if err != nil {
				return err
			}

			if err := Run(db, path); err != nil {
				return err
			}

			params.Logger.Info("Database migrations applied", slog.String("path", path))

			return nil
		},
	})
}

// Run applies every pending up migration found in path.
func Run(db *sql.DB, path string) error {
	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "pgx_v5", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

func resolvePath(path string, parents ...string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	for _, prefix := range append([]string{""}, parents...) {
		candidate := filepath.Join(prefix, path)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
	}

	return "", errors.Errorf("migration directory %q not found", path)
}
