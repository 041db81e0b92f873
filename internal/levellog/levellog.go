// Package levellog provides a numeric-threshold logging gate in front of
// github.com/grailbio/base/log, mirroring original_source's Logger
// class: every message carries a fixed level (OFF=0 .. ALL=1000) and is
// only emitted when the configured threshold is at or above it.
// base/log itself has no notion of a numeric level, so this package
// supplies the threshold check and forwards to the right base/log sink.
package levellog

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// Level mirrors original_source/src/utils/logger.h's LogLevel enum.
type Level int

const (
	Off     Level = 0
	Fatal   Level = 1
	Error   Level = 2
	Warn    Level = 3
	Info    Level = 4
	Debug   Level = 5
	DebugL2 Level = 6
	DebugL3 Level = 7
	DebugL4 Level = 8
	All     Level = 1000
)

// Logger gates output by comparing a message's level against a
// configured threshold, the same comparison original_source's Logger
// does before formatting and writing a message.
type Logger struct {
	threshold Level
}

// New returns a Logger that emits any message at or below level.
func New(level int) *Logger {
	return &Logger{threshold: Level(level)}
}

func (l *Logger) enabled(level Level) bool {
	return l != nil && l.threshold >= level
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	if l.enabled(Fatal) {
		log.Fatalf(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.enabled(Error) {
		log.Error.Printf(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.enabled(Warn) {
		log.Printf("WARN: "+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.enabled(Info) {
		log.Printf(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.enabled(Debug) {
		log.Debug.Printf(format, args...)
	}
}

func (l *Logger) Debugl2f(format string, args ...interface{}) {
	if l.enabled(DebugL2) {
		log.Debug.Printf(format, args...)
	}
}

func (l *Logger) Debugl3f(format string, args ...interface{}) {
	if l.enabled(DebugL3) {
		log.Debug.Printf(format, args...)
	}
}

func (l *Logger) Debugl4f(format string, args ...interface{}) {
	if l.enabled(DebugL4) {
		log.Debug.Printf(format, args...)
	}
}

// String renders a Level the way the CLI's -l help text names it.
func (l Level) String() string {
	switch l {
	case Off:
		return "OFF"
	case Fatal:
		return "FATAL"
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Info:
		return "INFO"
	case Debug:
		return "DEBUG"
	case DebugL2:
		return "DEBUGL2"
	case DebugL3:
		return "DEBUGL3"
	case DebugL4:
		return "DEBUGL4"
	case All:
		return "ALL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}
