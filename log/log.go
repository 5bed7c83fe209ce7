package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Config is a logger config
type Config struct {
	HideDebug bool
	HideWarn  bool
}

// Logger is a leveled logger
type Logger struct {
	mu sync.Mutex
	w  io.Writer
	c  Config
}

// Default is the default logger
var Default = New(os.Stderr, nil)

// New creates a new Logger. The config is optional.
func New(w io.Writer, c *Config) *Logger {
	if c == nil {
		c = &Config{}
	}
	return &Logger{w: w, c: *c}
}

func (l *Logger) logf(tag byte, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s [%c] %s\n", time.Now().Format("2006/01/02 15:04:05"), tag, msg)
}

// Debugf logs a debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.c.HideDebug {
		l.logf('D', format, args...)
	}
}

// Infof logs an info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf('*', format, args...)
}

// Warnf logs a warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.c.HideWarn {
		l.logf('#', format, args...)
	}
}

// Errorf logs an error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf('!', format, args...)
}

// Printf logs a message with no level
func (l *Logger) Printf(format string, args ...interface{}) {
	l.logf('-', format, args...)
}

// Fatalf logs a fatal message and exits the process
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf('!', format, args...)
	os.Exit(1)
}

// Debugf logs a debug message to the default logger
func Debugf(format string, args ...interface{}) { Default.Debugf(format, args...) }

// Infof logs an info message to the default logger
func Infof(format string, args ...interface{}) { Default.Infof(format, args...) }

// Warnf logs a warning message to the default logger
func Warnf(format string, args ...interface{}) { Default.Warnf(format, args...) }

// Errorf logs an error message to the default logger
func Errorf(format string, args ...interface{}) { Default.Errorf(format, args...) }

// Printf logs a message to the default logger
func Printf(format string, args ...interface{}) { Default.Printf(format, args...) }

// Fatal logs a fatal error and exits the process
func Fatal(err error) { Default.Fatalf("%v", err) }

// Fatalf logs a fatal message to the default logger and exits the process
func Fatalf(format string, args ...interface{}) { Default.Fatalf(format, args...) }
