package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "GORM query failed")
	assert.Contains(t, scoped.String(), "request_id=req-1")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LevelsFollowDebugFlag(t *testing.T) {
	var quiet, verbose bytes.Buffer

	cfg := &config.Config{}
	newGormSlogLogger(newBufferLogger(&quiet), cfg).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quiet.String())

	cfg.Env.Debug = true
	newGormSlogLogger(newBufferLogger(&verbose), cfg).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, verbose.String(), "GORM query")

	var silent bytes.Buffer
	newGormSlogLogger(newBufferLogger(&silent), cfg).LogMode(logger.Silent).
		Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, silent.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_ConstraintViolationIsWarning(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, &pgconn.PgError{Code: pgUniqueViolation})

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "GORM constraint violation")
}

func TestGormSlogLogger_Messages(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Info(context.Background(), "ignored %d", 1)
	l.Warn(context.Background(), "replica %s lagging", "r1")

	assert.NotContains(t, buf.String(), "ignored")
	assert.Contains(t, buf.String(), "replica r1 lagging")
}
