package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campus/config"
	"campus/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// slowQueryThreshold marks a statement as slow. Every repository call here is a
// single indexed lookup or insert, so anything above it deserves a warning.
const slowQueryThreshold = 200 * time.Millisecond

var (
	_ logger.Interface  = (*queryLogger)(nil)
	_ gorm.ParamsFilter = (*queryLogger)(nil)
)

// queryLogger writes GORM statements to the application slog logger.
// Logged SQL keeps its placeholders: bound values include password hashes and
// student phone numbers.
type queryLogger struct {
	log   *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

// newQueryLogger logs failures and slow statements, and every statement in debug mode.
func newQueryLogger(log *slog.Logger, cfg *config.Config) *queryLogger {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{log: log, level: level, slow: slowQueryThreshold}
}

func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.log == nil || l.level < threshold {
		return
	}

	l.log.LogAttrs(ctx, level, "gorm", slog.String("detail", fmt.Sprintf(msg, args...)))
}

// Trace logs one finished statement. A missing row is an expected outcome for
// FindByID/FindByEmail and is not logged as a failure.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.log == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.statement(ctx, slog.LevelError, "sql statement failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		l.statement(ctx, slog.LevelWarn, "slow sql statement", fc, elapsed, slog.Duration("threshold", l.slow))
	case l.level >= logger.Info:
		l.statement(ctx, slog.LevelInfo, "sql statement", fc, elapsed)
	}
}

func (l *queryLogger) statement(
	ctx context.Context,
	level slog.Level,
	msg string,
	fc func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.log.LogAttrs(ctx, level, msg, attrs...)
}
