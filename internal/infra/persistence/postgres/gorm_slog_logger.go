package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts GORM's logger to slog and prefers the request logger in ctx.
//
// Unique violations are expected: toggles and the one-comment-per-video rule are
// enforced by indexes. They only show up at debug.
type gormSlogLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < min {
		return
	}

	l.target(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	query, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", query),
	}, extra...)

	l.target(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify decides whether a finished statement is logged and how.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (slog.Level, string, []slog.Attr, bool) {
	switch {
	case err != nil && isUniqueConstraintViolation(err):
		return slog.LevelDebug, "GORM constraint rejected", []slog.Attr{slog.String("error", err.Error())}, l.level >= logger.Info
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return 0, "", nil, false
	case err != nil:
		return slog.LevelError, "GORM query failed", []slog.Attr{slog.String("error", err.Error())}, l.level >= logger.Error
	case l.slow > 0 && elapsed > l.slow:
		return slog.LevelWarn, "GORM slow query", []slog.Attr{slog.Duration("threshold", l.slow)}, l.level >= logger.Warn
	default:
		return slog.LevelInfo, "GORM query", nil, l.level >= logger.Info
	}
}

func (l *gormSlogLogger) target(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
