package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/projectledger/internal/platform/logging"
)

// Logger bridges GORM's logger interface onto slog. Statements are logged at
// debug, statements slower than the threshold at warn, and failures at
// error. A request-scoped logger in the context takes precedence over the
// base logger so SQL lines carry request_id and correlation_id.
type Logger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

var _ gormlogger.Interface = (*Logger)(nil)

// NewLogger returns a GORM logger writing to base. A zero slow disables
// slow-query warnings.
func NewLogger(base *slog.Logger, slow time.Duration) *Logger {
	if base == nil {
		base = slog.New(slog.DiscardHandler)
	}
	return &Logger{base: base, level: gormlogger.Info, slow: slow}
}

// LogMode returns a copy of the logger at the given GORM level.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.from(ctx).InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.from(ctx).WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.from(ctx).ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace logs one executed statement. Record-not-found is an expected
// outcome for lookups and is not reported as an error.
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	logger := l.from(ctx)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logger.ErrorContext(ctx, "sql statement failed",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.WarnContext(ctx, "slow sql statement",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", l.slow),
		)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logger.DebugContext(ctx, "sql statement",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}

func (l *Logger) from(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}
	if logger, ok := logging.Lookup(ctx); ok {
		return logger
	}
	return l.base
}
