package logging

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// ContextHook will add go source information (file, line, func)
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire is the method that's executed when logging event is logged. It walks up the call stack and
// records the first caller outside of logrus.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isHookFrame(frame.Function) {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(frame.Function)
			break
		}
		if !more {
			break
		}
	}

	return nil
}

// isHookFrame is true for logrus internals and this hook (including its pointer wrapper)
func isHookFrame(function string) bool {
	return strings.Contains(function, "github.com/sirupsen/logrus.") ||
		(strings.Contains(function, "ContextHook") && strings.HasSuffix(function, ".Fire"))
}
