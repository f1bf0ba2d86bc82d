// Package logtest implements Loggers for tests.
package logtest

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/selene-scrabble/log"
)

// DiscardLogger drops every message.
var DiscardLogger log.Logger = discardLogger{}

type discardLogger struct{}

// Printf implements the log.Logger interface.
func (discardLogger) Printf(format string, v ...interface{}) {
	// NOOP
}

// Logger records messages so tests can inspect them.
type Logger struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

var _ log.Logger = new(Logger)

// NewLogger creates an empty recording Logger.
func NewLogger() *Logger {
	return new(Logger)
}

// Printf implements the log.Logger interface.
// Each message is written on its own line.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(&l.buf, format, v...)
	if b := l.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		l.buf.WriteByte('\n')
	}
}

// String returns everything recorded so far.
func (l *Logger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

// Empty reports whether nothing has been recorded.
func (l *Logger) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Len() == 0
}

// Contains reports whether any recorded text contains substr.
func (l *Logger) Contains(substr string) bool {
	return strings.Contains(l.String(), substr)
}
