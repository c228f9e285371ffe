package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog zerolog.Logger

// InitStructured initializes the structured zerolog logger
func InitStructured(env string) {
	var w io.Writer

	if env == "development" || env == "dev" || env == "local" {
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		// JSON output for production (machine-readable)
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "kedai-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// Info logs a formatted message at info level
func Info(format string, args ...interface{}) {
	zlog.Info().Msgf(format, args...)
}

// Warn logs a formatted message at warn level
func Warn(format string, args ...interface{}) {
	zlog.Warn().Msgf(format, args...)
}

// Error logs a formatted message at error level
func Error(format string, args ...interface{}) {
	zlog.Error().Msgf(format, args...)
}

// Debug logs a formatted message at debug level
func Debug(format string, args ...interface{}) {
	zlog.Debug().Msgf(format, args...)
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithSessionID returns a logger with session_id field
func WithSessionID(sessionID string) zerolog.Logger {
	return zlog.With().Str("session_id", sessionID).Logger()
}

// WithUserID returns a logger with user_id field
func WithUserID(userID string) zerolog.Logger {
	return zlog.With().Str("user_id", userID).Logger()
}
