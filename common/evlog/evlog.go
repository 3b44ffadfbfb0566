/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package evlog implements the framework's event sink. Each message
// carries a stable uint32 event id assigned by the emitting package.
package evlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AstraFW/AstraFW/common/interfaces"
)

// This package implements interfaces.Logger
var _ interfaces.Logger = (*EventLogger)(nil)

// Option is a function that configures an EventLogger
type Option func(*EventLogger) error

type EventLogger struct {
	fileHandle     *os.File
	logfile        string
	logStdout      bool
	debug          bool
	prefix         string
	retainDays     int
	currentLogDate string
}

// New creates a new instance of EventLogger with the provided options
func New(options ...Option) (interfaces.Logger, error) {
	e := &EventLogger{retainDays: 30}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	if e.logfile != "" {

		// Sanitize the file path
		e.logfile = filepath.Clean(e.logfile)

		// Create the directory if it doesn't exist
		dir := filepath.Dir(e.logfile)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		// Carry the existing file's date forward so rotation picks up
		// where the previous run left off
		if fileInfo, err := os.Stat(e.logfile); err == nil {
			e.currentLogDate = fileInfo.ModTime().Format("20060102")
		} else {
			e.currentLogDate = time.Now().Format("20060102")
		}

		fh, err := os.OpenFile(e.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			e.fileHandle = nil
			// If unable to log to file, force stdout logging
			e.logStdout = true
		} else {
			e.fileHandle = fh

			// Attempt to set the file mode to 0644 on a best-effort basis
			_ = os.Chmod(e.logfile, 0644)
		}
	} else {
		// If no log file is specified, force stdout logging
		e.logStdout = true
	}
	return e, nil
}

// WithPrefix sets a process name or similar short identifier
func WithPrefix(prefix string) Option {
	return func(e *EventLogger) error {
		e.prefix = prefix
		return nil
	}
}

// WithLogFile sets the log file for the EventLogger
func WithLogFile(logfile string) Option {
	return func(e *EventLogger) error {
		e.logfile = logfile
		return nil
	}
}

// WithLogStdout enables or disables logging to stdout
func WithLogStdout(logStdout bool) Option {
	return func(e *EventLogger) error {
		e.logStdout = logStdout
		return nil
	}
}

// WithDebug enables or disables debug logging
func WithDebug(debug bool) Option {
	return func(e *EventLogger) error {
		e.debug = debug
		return nil
	}
}

// WithRetention sets the number of days to retain logs
func WithRetention(retainDays int) Option {
	return func(e *EventLogger) error {
		e.retainDays = retainDays
		return nil
	}
}

// Close closes the logger
func (e *EventLogger) Close() {
	if e.fileHandle != nil {
		_ = e.fileHandle.Sync()
		_ = e.fileHandle.Close()
	}
}

// formatMessage formats the log message with a timestamp
func (e *EventLogger) formatMessage(eid uint32, level string, message string, f interfaces.Fields) string {
	msg := fmt.Sprintf("%s %s [%s] %04d %s",
		time.Now().Format("2006-01-02 15:04:05"),
		e.prefix, level, eid, message)

	if f != nil {
		msg += ": " + f.ToText()
	}

	return msg
}

// writeLog writes a log message and handles rotation if necessary
func (e *EventLogger) writeLog(eid uint32, level string, message string, f interfaces.Fields) {

	if level == "DEBUG" && !e.debug {
		return
	}

	// Rotate logs if necessary
	err := e.rotateLogs()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "log rotation error: %s\n", err.Error())
	}

	tmp := e.formatMessage(eid, level, message, f) + "\n"

	// Write and flush
	if e.fileHandle != nil {
		_, _ = e.fileHandle.WriteString(tmp)
		_ = e.fileHandle.Sync()
	}

	if e.logStdout {
		_, _ = os.Stdout.Write([]byte(tmp))
	}
}

// Debug logs a debug message.
func (e *EventLogger) Debug(eid uint32, message string, f interfaces.Fields) {
	e.writeLog(eid, "DEBUG", message, f)
}

// Info logs an informational message.
func (e *EventLogger) Info(eid uint32, message string, f interfaces.Fields) {
	e.writeLog(eid, "INFO", message, f)
}

// Warning logs a warning message.
func (e *EventLogger) Warning(eid uint32, message string, f interfaces.Fields) {
	e.writeLog(eid, "WARNING", message, f)
}

// Error logs an error message.
func (e *EventLogger) Error(eid uint32, message string, f interfaces.Fields) {
	e.writeLog(eid, "ERROR", message, f)
}

// Fatal logs a fatal error message.
func (e *EventLogger) Fatal(eid uint32, message string, f interfaces.Fields) {
	e.writeLog(eid, "FATAL", message, f)
}

// Debugf logs a formatted debug message.
func (e *EventLogger) Debugf(eid uint32, format string, v ...any) {
	e.writeLog(eid, "DEBUG", fmt.Sprintf(format, v...), nil)
}

// Infof logs a formatted informational message.
func (e *EventLogger) Infof(eid uint32, format string, v ...any) {
	e.writeLog(eid, "INFO", fmt.Sprintf(format, v...), nil)
}

// Warningf logs a formatted warning message.
func (e *EventLogger) Warningf(eid uint32, format string, v ...any) {
	e.writeLog(eid, "WARNING", fmt.Sprintf(format, v...), nil)
}

// Errorf logs a formatted error message.
func (e *EventLogger) Errorf(eid uint32, format string, v ...any) {
	e.writeLog(eid, "ERROR", fmt.Sprintf(format, v...), nil)
}

// Fatalf logs a formatted fatal message.
func (e *EventLogger) Fatalf(eid uint32, format string, v ...any) {
	e.writeLog(eid, "FATAL", fmt.Sprintf(format, v...), nil)
}
