// Package log provides leveled logging for the bases tools.
//
// Text output looks like "NOTICE: object: message". With the json
// format each line is a logrus JSON entry carrying the object and its
// type as fields.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/basesgo/bases/lib/enum"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogLevel describes the logs. These are a subset of the syslog log levels.
type LogLevel byte

// Log levels.  These are the syslog levels of which we only use a
// subset.
//
//	LOG_EMERG      system is unusable
//	LOG_ALERT      action must be taken immediately
//	LOG_CRIT       critical conditions
//	LOG_ERR        error conditions
//	LOG_WARNING    warning conditions
//	LOG_NOTICE     normal, but significant, condition
//	LOG_INFO       informational message
//	LOG_DEBUG      debug-level message
const (
	LogLevelEmergency LogLevel = iota
	LogLevelAlert
	LogLevelCritical
	LogLevelError // Error - can't be suppressed
	LogLevelWarning
	LogLevelNotice // Normal logging, -q suppresses
	LogLevelInfo   // Needs -v
	LogLevelDebug  // Debug level, needs -vv
)

var logLevelToString = []string{
	LogLevelEmergency: "EMERGENCY",
	LogLevelAlert:     "ALERT",
	LogLevelCritical:  "CRITICAL",
	LogLevelError:     "ERROR",
	LogLevelWarning:   "WARNING",
	LogLevelNotice:    "NOTICE",
	LogLevelInfo:      "INFO",
	LogLevelDebug:     "DEBUG",
}

// String turns a LogLevel into a string
func (l LogLevel) String() string {
	if l >= LogLevel(len(logLevelToString)) {
		return fmt.Sprintf("LogLevel(%d)", l)
	}
	return logLevelToString[l]
}

// Set a LogLevel
func (l *LogLevel) Set(s string) error {
	for n, name := range logLevelToString {
		if s != "" && name == s {
			*l = LogLevel(n)
			return nil
		}
	}
	return errors.Errorf("Unknown log level %q", s)
}

// Type of the value
func (l *LogLevel) Type() string {
	return "string"
}

// Format selects how log lines are written
type Format = enum.Enum[formatChoices]

// Log formats
const (
	FormatText Format = iota
	FormatJSON
)

type formatChoices struct{}

func (formatChoices) Choices() []string {
	return []string{
		FormatText: "text",
		FormatJSON: "json",
	}
}

// Options configures logging
type Options struct {
	Level  LogLevel `config:"log_level"`
	Format Format   `config:"log_format"`
}

// DefaultOptions are used until Setup is called
var DefaultOptions = Options{
	Level:  LogLevelNotice,
	Format: FormatText,
}

var (
	mu     sync.RWMutex
	opt    = DefaultOptions
	logger = newLogger(os.Stderr, DefaultOptions.Format)
)

func newLogger(out io.Writer, format Format) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.Level = logrus.DebugLevel
	if format == FormatJSON {
		l.Formatter = &logrus.JSONFormatter{}
	} else {
		l.Formatter = &textFormatter{}
	}
	return l
}

// Setup replaces the logging options
func Setup(o Options) {
	mu.Lock()
	defer mu.Unlock()
	opt = o
	logger = newLogger(logger.Out, o.Format)
}

// SetOutput redirects the logs to w
func SetOutput(w io.Writer) {
	mu.RLock()
	defer mu.RUnlock()
	logger.SetOutput(w)
}

// GetOptions returns the current logging options
func GetOptions() Options {
	mu.RLock()
	defer mu.RUnlock()
	return opt
}

// textFormatter writes "LEVEL : object: message"
type textFormatter struct{}

func (textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	level, _ := entry.Data["level"].(LogLevel)
	out := entry.Message
	if o, ok := entry.Data["object"]; ok {
		out = fmt.Sprintf("%v: %s", o, out)
	}
	return []byte(fmt.Sprintf("%-6s: %s\n", level, out)), nil
}

// LogPrintf produces a log string from the arguments passed in
func LogPrintf(level LogLevel, o interface{}, text string, args ...interface{}) {
	mu.RLock()
	l, format := logger, opt.Format
	mu.RUnlock()

	out := fmt.Sprintf(text, args...)
	fields := logrus.Fields{}
	if format == FormatJSON {
		if o != nil {
			fields["object"] = fmt.Sprintf("%+v", o)
			fields["objectType"] = fmt.Sprintf("%T", o)
		}
	} else {
		fields["level"] = level
		if o != nil {
			fields["object"] = o
		}
	}
	entry := l.WithFields(fields)
	switch level {
	case LogLevelDebug:
		entry.Debug(out)
	case LogLevelInfo:
		entry.Info(out)
	case LogLevelNotice, LogLevelWarning:
		entry.Warn(out)
	default:
		entry.Error(out)
	}
}

// LogLevelPrintf writes logs at the given level
func LogLevelPrintf(level LogLevel, o interface{}, text string, args ...interface{}) {
	if GetOptions().Level >= level {
		LogPrintf(level, o, text, args...)
	}
}

// Errorf writes error log output for this object. It should always be
// seen by the user.
func Errorf(o interface{}, text string, args ...interface{}) {
	LogLevelPrintf(LogLevelError, o, text, args...)
}

// Logf writes log output for this object. This is Notice level logging
// and the default level. The user can filter these out with -q.
func Logf(o interface{}, text string, args ...interface{}) {
	LogLevelPrintf(LogLevelNotice, o, text, args...)
}

// Infof writes informational output for this object, shown with -v
func Infof(o interface{}, text string, args ...interface{}) {
	LogLevelPrintf(LogLevelInfo, o, text, args...)
}

// Debugf writes debugging output for this object, shown with -vv
func Debugf(o interface{}, text string, args ...interface{}) {
	LogLevelPrintf(LogLevelDebug, o, text, args...)
}
