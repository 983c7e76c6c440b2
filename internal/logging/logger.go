// Package logging is a small leveled logger over the standard log package.
// Messages go to the console at or above the configured level and, when a log
// file is open, every message is also written to the file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level orders message severity.
type Level int

const (
	LevelDebug Level = iota
	LevelNote
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelNote:
		return "NOTE"
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

// ParseLevel accepts the lower- or upper-case level names.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "note":
		return LevelNote, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger writes leveled messages to a console writer and an optional file.
type Logger struct {
	mu      sync.Mutex
	level   Level
	console *log.Logger
	file    *log.Logger
	closer  io.Closer
}

// New returns a logger printing messages at or above level to w.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, console: log.New(w, "", log.LstdFlags)}
}

// OpenFile additionally writes every message, regardless of level, to path.
func (l *Logger) OpenFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer != nil {
		l.closer.Close()
	}
	l.file = log.New(f, "", log.LstdFlags)
	l.closer = f
	return nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.file, l.closer = nil, nil
	return err
}

// SetLevel changes the console threshold.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Enabled reports whether a message at level reaches the console.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// Logf formats and writes one message.
func (l *Logger) Logf(level Level, format string, args ...any) {
	msg := fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...))
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Println(msg)
	}
	if level >= l.level {
		l.console.Println(msg)
	}
}

var (
	stdMu sync.RWMutex
	std   = New(os.Stderr, LevelInfo)
)

// Init replaces the package logger with one writing to w.
func Init(w io.Writer, level Level) {
	stdMu.Lock()
	old := std
	std = New(w, level)
	stdMu.Unlock()
	old.Close()
}

// InitFile logs to stderr at level and to path at every level.
func InitFile(path string, level Level) error {
	l := New(os.Stderr, level)
	if err := l.OpenFile(path); err != nil {
		return err
	}
	stdMu.Lock()
	old := std
	std = l
	stdMu.Unlock()
	old.Close()
	return nil
}

// Close closes the package logger's file.
func Close() error { return Default().Close() }

// Default returns the package logger.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

func Debugf(format string, args ...any) { Default().Logf(LevelDebug, format, args...) }
func Notef(format string, args ...any)  { Default().Logf(LevelNote, format, args...) }
func Infof(format string, args ...any)  { Default().Logf(LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { Default().Logf(LevelWarn, format, args...) }
func Errorf(format string, args ...any) { Default().Logf(LevelError, format, args...) }
