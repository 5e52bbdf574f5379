// Package log provides the logging interface used throughout the emulator,
// along with a logrus backed implementation.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger writing to stderr at info level.
func New() Logger {
	return newLogger(os.Stderr, logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing to stderr at the named
// level (panic, fatal, error, warn, info, debug, trace).
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newLogger(os.Stderr, lvl), nil
}

// NewWriter returns a Logger writing to w at the given level.
func NewWriter(w io.Writer, level logrus.Level) Logger {
	return newLogger(w, level)
}

func newLogger(w io.Writer, level logrus.Level) *logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{Logger: l}
}
