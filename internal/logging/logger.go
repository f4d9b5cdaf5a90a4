package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields

// New creates a JSON logger at the given level, tagged with the service name.
func New(service string, level logrus.Level) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(level)
	return logger.WithField("service", service)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
