// Package logger configures the application's structured logging.
//
// It uses *ZeroLog* for every log line the application writes and adapts
// it to the PGX query tracer so SQL can be logged in local environments.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nishaantmazarallo/Mini-project/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// maxSQLFieldLen truncates logged statements in console output.
const maxSQLFieldLen = 500

// New builds the application logger on stderr.
func New(cfg *config.ObservabilityConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds the application logger on w: JSON, or a console
// writer when the format is "console". Every line carries the service name
// and environment.
func NewWithWriter(cfg *config.ObservabilityConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

// NewPgxLogger returns a console logger for pgx's tracelog output. SQL is
// collapsed onto one line and truncated.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
		FormatFieldValue: func(i any) string {
			switch v := i.(type) {
			case string:
				v = strings.Join(strings.Fields(v), " ")
				if len(v) > maxSQLFieldLen {
					return v[:maxSQLFieldLen] + "..."
				}
				return v
			default:
				return fmt.Sprint(v)
			}
		},
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", "database").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the tracelog level that
// produces the same verbosity.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
