package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval      = 5 * time.Second
	poolWaitWarnThreshold    = 50 * time.Millisecond
	poolStatsCollectorDBName = "primary"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary (and configured replicas) and binds the pool to the app lifecycle.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config must be provided")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Multi-statement atomicity comes from TransactionManager.Execute only.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	params.Metrics.RegisterDBStats(sqlDB, poolStatsCollectorDBName)

	monitor := &poolMonitor{logger: params.Logger, stats: sqlDB.Stats}
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(monitorCtx, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL pool")
		},
	})

	return db, nil
}

// poolMonitor logs connection pool waits. Request handlers block on the pool while
// holding a user row lock, so sustained waits show up as slow card operations.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe logs the waits that happened between two samples. It reports whether it logged.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) bool {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return false
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	)

	return true
}
