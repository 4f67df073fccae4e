package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"echofleet/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes gorm's query log through the shared slog logger.
// Record-not-found is part of normal registry lookups and is never logged
// as an error.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, logger.Info, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, logger.Warn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, logger.Error, msg, args...)
}

func (l *gormSlogLogger) log(ctx context.Context, slogLevel slog.Level, gormLevel logger.LogLevel, msg string, args ...any) {
	if l.level < gormLevel || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel, "registry",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case l.shouldLogError(err):
		attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "registry query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "registry slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "registry query", l.queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

func (l *gormSlogLogger) shouldLogError(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}

	return !errors.Is(err, gorm.ErrRecordNotFound)
}
