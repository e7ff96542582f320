// Package logger provides structured logging for the latex-for-typora application.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps debug|info|warn|error (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is the main logging struct. Loggers derived with With share
// the level and the output of their parent.
type Logger struct {
	zl  zerolog.Logger
	lvl *atomic.Int32
	out *switchWriter
}

// switchWriter lets the destination change after loggers were derived.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

// Default logger instance
var defaultLogger = New(LevelInfo, Console(os.Stderr))

// Console wraps w in zerolog's human-readable writer.
func Console(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
}

// Writer returns w for the "json" format and Console(w) otherwise.
func Writer(format string, w io.Writer) io.Writer {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return w
	}
	return Console(w)
}

// New creates a new logger with the specified level and output.
// Output written as-is is JSON lines; wrap it with Console for text.
func New(level Level, output io.Writer) *Logger {
	out := &switchWriter{w: output}
	l := &Logger{
		zl:  zerolog.New(out).With().Timestamp().Logger(),
		lvl: new(atomic.Int32),
		out: out,
	}
	l.lvl.Store(int32(level))
	return l
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// SetLevel sets the minimum log level for the default logger.
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetOutput sets the output writer for the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// Level returns the minimum level the logger emits.
func (l *Logger) Level() Level {
	return Level(l.lvl.Load())
}

// SetLevel changes the minimum level of l and every logger derived from it.
func (l *Logger) SetLevel(level Level) {
	l.lvl.Store(int32(level))
}

// SetOutput redirects l and every logger derived from it to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.out.set(w)
}

// With returns a child logger that adds key=value to every message.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{
		zl:  l.zl.With().Interface(key, value).Logger(),
		lvl: l.lvl,
		out: l.out,
	}
}

// event returns nil below the current level; zerolog drops nil events.
func (l *Logger) event(level Level) *zerolog.Event {
	if level < l.Level() {
		return nil
	}
	switch level {
	case LevelDebug:
		return l.zl.Debug()
	case LevelWarn:
		return l.zl.Warn()
	case LevelError:
		return l.zl.Error()
	default:
		return l.zl.Info()
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.event(LevelDebug).Msgf(format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.event(LevelInfo).Msgf(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.event(LevelWarn).Msgf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.event(LevelError).Msgf(format, args...)
}

// Err logs err at error level with a message.
func (l *Logger) Err(err error, msg string) {
	l.event(LevelError).Err(err).Msg(msg)
}
