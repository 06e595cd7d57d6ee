package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// ParseLevel converts a configured level name into a log.Level.
func ParseLevel(name string) (log.Level, error) {
	return log.ParseLevel(name)
}

// Open creates a logger at the named level writing to w, and also to the
// file at path when path is not empty. The returned cleanup closes the file.
func Open(w io.Writer, level, path string) (*Logger, func(), error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return NewWithLevel(w, lvl), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		f.Close()
	}
	return NewWithLevel(io.MultiWriter(w, f), lvl), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, from, to string, timeout time.Duration) {
	l.Debug("config loaded",
		"path", path,
		"from", from,
		"to", to,
		"timeout", timeout)
}

// ParseCompleted logs a parsed source document
func (l *Logger) ParseCompleted(source string, nodes int, duration time.Duration) {
	l.Debug("parse completed",
		"source", source,
		"nodes", nodes,
		"duration", duration.Round(time.Microsecond))
}

// ConversionCompleted logs a successful conversion
func (l *Logger) ConversionCompleted(source, format string, bytes int64, duration time.Duration) {
	l.Info("conversion completed",
		"source", source,
		"format", format,
		"bytes", bytes,
		"duration", duration.Round(time.Millisecond))
}

// ConversionFailed logs a conversion error
func (l *Logger) ConversionFailed(source, format string, err error) {
	l.Error("conversion failed",
		"source", source,
		"format", format,
		"error", err)
}
