// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package logging provides the zerolog-based structured logging used across
// the dispatch loop, the orchestrator, the key-handler chain, and the CLI.
//
// Quick start:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("backend", "radarr").Msg("warm-up events emitted")
//
// Always terminate a chain with .Msg()/.Msgf()/.Send() — a chain left
// unterminated is silently dropped by zerolog.
package logging

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config holds logging configuration, normally populated from the
// SERVARR_LOGGING_LEVEL / SERVARR_LOGGING_FORMAT environment variables by
// internal/config.
type Config struct {
	// Level is trace, debug, info, warn, error (default: info).
	Level string
	// Format is json or console (default: json).
	Format string
	// Caller includes file:line in each entry.
	Caller bool
	// Output defaults to os.Stderr.
	Output *os.File
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	initLogger(DefaultConfig())
}

// Init (re)configures the global logger. Safe to call more than once;
// cmd/servarr-tui calls it once at startup, in both CLI and dashboard mode,
// from the loaded Config.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

func initLogger(cfg Config) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	var output *os.File = cfg.Output
	if output == nil {
		output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	zerolog.ErrorFieldName = "error"

	var w zerolog.ConsoleWriter
	var base zerolog.Logger
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
		base = zerolog.New(w)
	} else {
		base = zerolog.New(output)
	}
	ctx := base.With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	log = ctx.Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// With starts a child-logger builder, used once per component to attach a
// "component" field (dispatch, orchestrator, keyhandler, cli, ...).
func With() zerolog.Context {
	mu.RLock()
	defer mu.RUnlock()
	return log.With()
}

func Trace() *zerolog.Event { mu.RLock(); defer mu.RUnlock(); return log.Trace() }
func Debug() *zerolog.Event { mu.RLock(); defer mu.RUnlock(); return log.Debug() }
func Info() *zerolog.Event  { mu.RLock(); defer mu.RUnlock(); return log.Info() }
func Warn() *zerolog.Event  { mu.RLock(); defer mu.RUnlock(); return log.Warn() }
func Error() *zerolog.Event { mu.RLock(); defer mu.RUnlock(); return log.Error() }
func Fatal() *zerolog.Event { mu.RLock(); defer mu.RUnlock(); return log.Fatal() }

func Err(err error) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Err(err)
}

type correlationKey struct{}

// WithCorrelationID stamps ctx with a fresh correlation id (a network event's
// identity across its internal GET-then-PUT sub-requests), or reuses one
// already present.
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return context.WithValue(ctx, correlationKey{}, id), id
}

// Ctx returns a logger carrying the correlation id from ctx, if any.
func Ctx(ctx context.Context) zerolog.Logger {
	mu.RLock()
	base := log
	mu.RUnlock()
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		return base.With().Str("correlation_id", id).Logger()
	}
	return base
}

// NewTestLogger creates a logger writing to w, for capturing output in tests.
func NewTestLogger(w *os.File) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// SetLevelString updates the global log level from a string at runtime.
func SetLevelString(level string) {
	zerolog.SetGlobalLevel(parseLevel(level))
}
