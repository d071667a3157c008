package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = logrus.WarnLevel

// LogrusAdapter is the Logger used by the sft binary. Every derived logger
// shares the underlying logrus.Logger and carries its own entry fields.
type LogrusAdapter struct {
	entry *logrus.Entry
}

// NewLogrusAdapter builds a logger for the given level and format ("text" or
// "json"). Output goes to out, or to stderr when out is nil, so that command
// output on stdout stays machine readable.
func NewLogrusAdapter(level, format string, out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(formatterFor(format))

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = DefaultLevel
	}
	logger.SetLevel(lvl)
	if err != nil {
		logger.WithField("configured", level).Warnf("Unknown log level, using %s", lvl)
	}
	return &LogrusAdapter{entry: logrus.NewEntry(logger)}
}

func formatterFor(format string) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &logrus.JSONFormatter{TimestampFormat: time.RFC3339}
	}
	return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Debug(msg)
}

func (l *LogrusAdapter) Info(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Info(msg)
}

func (l *LogrusAdapter) Warn(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Warn(msg)
}

func (l *LogrusAdapter) Error(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Error(msg)
}

func (l *LogrusAdapter) WithError(err error) Logger {
	return &LogrusAdapter{entry: l.entry.WithError(err)}
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return &LogrusAdapter{entry: l.entry.WithField(key, value)}
}

func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return &LogrusAdapter{entry: l.entry.WithFields(toLogrusFields(fields))}
}

// level reports the active level.
func (l *LogrusAdapter) level() logrus.Level {
	return l.entry.Logger.GetLevel()
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
