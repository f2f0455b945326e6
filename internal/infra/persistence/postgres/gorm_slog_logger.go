package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hivewatch/config"
	deliverycontext "hivewatch/internal/delivery/context"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	// Fan-out inserts render hundreds of rows into one statement.
	maxLoggedSQLLength = 2048
)

// gormSlogLogger routes gorm logs to slog, using the request-scoped logger when there is one.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{logger: logger, level: level, slowThreshold: slowQueryThreshold}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min {
		return
	}
	l.from(ctx).LogAttrs(ctx, level, "[GORM] "+fmt.Sprintf(msg, args...))
}

// Trace logs failed queries, slow queries, and every query in debug mode.
// Record-not-found and cancelled queries are expected and not logged as errors.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !expectedQueryError(err):
		attrs := append(queryAttrs(fc, elapsed), slog.Any("error", err))
		l.from(ctx).LogAttrs(ctx, slog.LevelError, "[GORM] Query failed", attrs...)
	case elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.from(ctx).LogAttrs(ctx, slog.LevelWarn, "[GORM] Slow query", queryAttrs(fc, elapsed)...)
	case l.level >= gormlogger.Info:
		l.from(ctx).LogAttrs(ctx, slog.LevelDebug, "[GORM] Query", queryAttrs(fc, elapsed)...)
	}
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func expectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, context.Canceled)
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()
	if len(sql) > maxLoggedSQLLength {
		sql = sql[:maxLoggedSQLLength] + "..."
	}

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
