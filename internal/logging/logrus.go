// Package logging provides a logrus-backed adapter for the calculation
// package's Logger interface.
package logging

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter wraps a *logrus.Logger so it can be injected into the
// analysis engine.
type LogrusAdapter struct {
	log *logrus.Logger
}

// NewLogrusAdapter creates an adapter around an existing logrus logger.
func NewLogrusAdapter(log *logrus.Logger) *LogrusAdapter {
	return &LogrusAdapter{log: log}
}

// NewDefault creates a logrus logger with text output at the given level
// and wraps it. Unknown level strings fall back to info.
func NewDefault(level string) *LogrusAdapter {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return &LogrusAdapter{log: log}
}

func (a *LogrusAdapter) Debugf(format string, args ...interface{}) {
	a.log.Debugf(format, args...)
}

func (a *LogrusAdapter) Infof(format string, args ...interface{}) {
	a.log.Infof(format, args...)
}

func (a *LogrusAdapter) Warnf(format string, args ...interface{}) {
	a.log.Warnf(format, args...)
}

func (a *LogrusAdapter) Errorf(format string, args ...interface{}) {
	a.log.Errorf(format, args...)
}
