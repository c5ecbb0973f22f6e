package mocks

import (
	"fmt"
	"sync"

	"github.com/pmdartus/speedline/pkg/ports"
)

type logStore struct {
	mu    sync.Mutex
	lines []string
}

// Logger records formatted messages for test assertions.
// Component loggers share the parent's store.
type Logger struct {
	store  *logStore
	prefix string
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{store: &logStore{}}
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record("debug", msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.record("info", msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.record("warn", msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.record("error", msg, args...) }

func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{store: l.store, prefix: "[" + component + "] "}
}

// Messages returns every recorded line as "level: [component] text".
func (l *Logger) Messages() []string {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return append([]string(nil), l.store.lines...)
}

func (l *Logger) record(level, msg string, args ...interface{}) {
	line := level + ": " + l.prefix + fmt.Sprintf(msg, args...)
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	l.store.lines = append(l.store.lines, line)
}

var _ ports.Logger = (*Logger)(nil)
