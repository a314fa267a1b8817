package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level is a log severity; messages below the current level are dropped.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// ParseLevel maps a level name (debug|info|warn|error) to a Level.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// SetLogLevel parses and sets the global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, err := ParseLevel(s)
	if err != nil {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
}

// GetLogLevel returns the current global log level.
func GetLogLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

// SetOutput redirects log output (used by the CLI for --quiet style setups and by tests).
func SetOutput(w io.Writer) {
	baseLogger.SetOutput(w)
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func logf(l Level, format string, args ...interface{}) {
	if GetLogLevel() > l {
		return
	}
	// Only format when there are args, so chart titles containing a literal % are printed as-is.
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", l, format)
		return
	}
	baseLogger.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

// Debugf logs render timings and per-file details; hidden at the default level.
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }

// Infof logs progress through a deck (charts shown, files exported).
func Infof(format string, a ...interface{}) { logf(LevelInfo, format, a...) }

// Warnf logs recoverable failures such as a resize redraw that could not render.
func Warnf(format string, a ...interface{}) { logf(LevelWarn, format, a...) }

// Errorf logs the error that ends a command.
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs at debug level how long label took since start, rounded to
// the microsecond. Call it right after the timed step, not deferred, so that
// time spent waiting on a chart window is not counted.
func TimeTrack(start time.Time, label string) {
	Debugf("%s: %s", label, time.Since(start).Round(time.Microsecond))
}
