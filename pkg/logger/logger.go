// Package logger holds the project-wide logrus logger
package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	projectLogger *logrus.Logger
	once          sync.Once
)

// GetProjectLogger returns the shared logger, creating it on first use
func GetProjectLogger() *logrus.Logger {
	once.Do(func() {
		projectLogger = New(logrus.InfoLevel)
	})
	return projectLogger
}

// New creates a text logger writing to stderr at the given level
func New(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}
