package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DebugLevel indicates a log message's level of criticality
	DebugLevel = iota
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(lvl int) string {
	switch lvl {
	case DebugLevel:
		return "debug"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

// ParseLogLevel translates a string representation of a log level to a log level enum
func ParseLogLevel(name string) (int, error) {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("Unrecognized log level %q", name)
	}
}

// levelFilter translates a log level enum to a go-kit level filter
func levelFilter(lvl int) level.Option {
	switch lvl {
	case DebugLevel:
		return level.AllowDebug()
	case WarnLevel:
		return level.AllowWarn()
	case ErrorLevel:
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// CreateLogger produces a logfmt Logger writing to w, which discards messages below the named level
func CreateLogger(w io.Writer, levelName string) (log.Logger, error) {
	lvl, err := ParseLogLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, levelFilter(lvl))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}
