package db

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold marks queries logged as slow.
const slowQueryThreshold = 200 * time.Millisecond

// zerologGorm writes gorm's query log through zerolog.
// Failed queries go out at warn level; callers log the outcome themselves.
// Record-not-found is a normal result and is not logged.
type zerologGorm struct {
	l     zerolog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

var _ gormlogger.Interface = (*zerologGorm)(nil)

func newGormLogger(l zerolog.Logger) *zerologGorm {
	return &zerologGorm{
		l:     l.With().Str("component", "gorm").Logger(),
		level: gormlogger.Warn,
		slow:  slowQueryThreshold,
	}
}

func (g *zerologGorm) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *g
	c.level = level
	return &c
}

func (g *zerologGorm) Info(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Info {
		g.l.Info().Msgf(msg, data...)
	}
}

func (g *zerologGorm) Warn(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Warn {
		g.l.Warn().Msgf(msg, data...)
	}
}

func (g *zerologGorm) Error(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Error {
		g.l.Error().Msgf(msg, data...)
	}
}

func (g *zerologGorm) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.l.Warn().Err(err).Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("query failed")
	case g.slow > 0 && elapsed > g.slow && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.l.Warn().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("slow query")
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.l.Debug().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("query")
	}
}
