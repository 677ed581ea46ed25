package logging

import (
	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no verbosity flag is given. Warnings (e.g. ambiguous messages) are
// always shown.
const DefaultLevel = log.WarnLevel

// SetVerbosity defines the verbosity level of the application. Every `-v` raises the level by one,
// up to trace.
func SetVerbosity(v []bool) {
	log.SetLevel(VerbosityLevel(len(v)))
}

// VerbosityLevel maps the number of `-v` flags to a log level
func VerbosityLevel(count int) log.Level {
	verbosity := DefaultLevel + log.Level(count)
	if count < 0 {
		verbosity = DefaultLevel
	} else if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	return verbosity
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
