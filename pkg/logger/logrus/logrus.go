// Package logrus adapts github.com/sirupsen/logrus to logger.Logger.
package logrus

import (
	"fmt"
	"io"
	"os"

	"github.com/raykavin/goplotly/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Options controls the output produced by New.
type Options struct {
	Level      string
	TimeLayout string
	Colored    bool
	JSON       bool
	Out        io.Writer
}

// LogrusAdapter exposes a logrus entry through logger.Logger.
type LogrusAdapter struct {
	*logrus.Entry
}

var _ logger.Logger = (*LogrusAdapter)(nil)

// NewLogrus creates a text or JSON logger on stderr.
func NewLogrus(level, dateTimeLayout string, colored, jsonFormat bool) (*LogrusAdapter, error) {
	return New(Options{
		Level:      level,
		TimeLayout: dateTimeLayout,
		Colored:    colored,
		JSON:       jsonFormat,
		Out:        os.Stderr,
	})
}

func New(opts Options) (*LogrusAdapter, error) {
	level, err := logger.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(toLogrusLevel(level))
	if opts.Out != nil {
		log.SetOutput(opts.Out)
	} else {
		log.SetOutput(os.Stderr)
	}

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: opts.TimeLayout})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   opts.TimeLayout != "",
			TimestampFormat: opts.TimeLayout,
			ForceColors:     opts.Colored,
			DisableColors:   !opts.Colored,
		})
	}

	return &LogrusAdapter{logrus.NewEntry(log)}, nil
}

// NewAdapter wraps an existing logrus logger.
func NewAdapter(log *logrus.Logger) *LogrusAdapter {
	return &LogrusAdapter{logrus.NewEntry(log)}
}

// GetLevel implements logger.Logger.
func (l *LogrusAdapter) GetLevel() logger.Level {
	return toLevel(l.Entry.Logger.GetLevel())
}

// SetLevel implements logger.Logger. The level is shared by every adapter
// derived from the same logrus logger.
func (l *LogrusAdapter) SetLevel(level logger.Level) {
	l.Entry.Logger.SetLevel(toLogrusLevel(level))
}

// WithError implements logger.Logger.
func (l *LogrusAdapter) WithError(err error) logger.Logger {
	return &LogrusAdapter{l.Entry.WithError(err)}
}

// WithField implements logger.Logger.
func (l *LogrusAdapter) WithField(key string, value any) logger.Logger {
	return &LogrusAdapter{l.Entry.WithField(key, value)}
}

// WithFields implements logger.Logger.
func (l *LogrusAdapter) WithFields(fields map[string]any) logger.Logger {
	return &LogrusAdapter{l.Entry.WithFields(logrus.Fields(fields))}
}

func toLevel(level logrus.Level) logger.Level {
	switch level {
	case logrus.TraceLevel:
		return logger.TraceLevel
	case logrus.DebugLevel:
		return logger.DebugLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	case logrus.ErrorLevel:
		return logger.ErrorLevel
	case logrus.FatalLevel:
		return logger.FatalLevel
	case logrus.PanicLevel:
		return logger.PanicLevel
	default:
		return logger.NoLevel
	}
}

// toLogrusLevel maps logger.Disabled to PanicLevel, the quietest level
// logrus has.
func toLogrusLevel(level logger.Level) logrus.Level {
	switch level {
	case logger.TraceLevel:
		return logrus.TraceLevel
	case logger.DebugLevel:
		return logrus.DebugLevel
	case logger.InfoLevel:
		return logrus.InfoLevel
	case logger.WarnLevel:
		return logrus.WarnLevel
	case logger.ErrorLevel:
		return logrus.ErrorLevel
	case logger.FatalLevel:
		return logrus.FatalLevel
	case logger.PanicLevel, logger.Disabled:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
