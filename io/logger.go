package argvio

import (
	"fmt"
	stdio "io"
	"time"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the tag printed for the level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is a small leveled logger writing through a Manager. The parser uses
// it for opt-in parse tracing; messages below the configured level are
// dropped.
type Logger struct {
	mgr      *Manager
	level    LogLevel
	scope    string
	withTime bool
}

// NewLogger returns a logger bound to the manager, reporting Info and above.
func NewLogger(mgr *Manager) *Logger {
	return &Logger{mgr: mgr, level: LevelInfo}
}

// WithLevel sets the minimum reported level and returns the logger.
func (l *Logger) WithLevel(level LogLevel) *Logger { l.level = level; return l }

// WithScope prefixes every message with a scope label and returns the logger.
func (l *Logger) WithScope(scope string) *Logger { l.scope = scope; return l }

// WithTimestamp toggles a time prefix and returns the logger.
func (l *Logger) WithTimestamp(enabled bool) *Logger { l.withTime = enabled; return l }

// Log writes one message at the given level.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.level {
		return
	}

	tag := "[" + level.String() + "]"
	switch level {
	case LevelError:
		tag = l.mgr.ErrorText(tag)
	case LevelWarning:
		tag = l.mgr.WarnText(tag)
	case LevelDebug:
		tag = l.mgr.FaintText(tag)
	case LevelInfo:
		tag = l.mgr.KeyText(tag)
	}

	line := tag
	if l.withTime {
		line = l.mgr.FaintText(time.Now().Format("15:04:05")) + " " + line
	}
	if l.scope != "" {
		line += " " + l.scope + ":"
	}
	fmt.Fprintf(l.selectWriter(level), "%s %s\n", line, fmt.Sprintf(format, args...))
}

// Errors and warnings go to the error stream, everything else to output.
func (l *Logger) selectWriter(level LogLevel) stdio.Writer {
	if level >= LevelWarning {
		return l.mgr.Err()
	}
	return l.mgr.Out()
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Warnf logs at warning level.
func (l *Logger) Warnf(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.Log(LevelError, format, args...) }
