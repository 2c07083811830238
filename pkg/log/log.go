// Package log creates the logrus logger shared by the commands.
// Logs are written to stderr because stdout carries the findings.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

func New(stderr io.Writer, version string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{})
	return logger.WithFields(logrus.Fields{
		"program_version": version,
		"program":         "diff-findings",
	})
}
