package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns the diagnostic logger for one command.
// Results go to stdout as plain lines; the logger only carries diagnostics.
func newLogger(w io.Writer, f commonFlags) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	switch {
	case f.verbose:
		log.SetLevel(logrus.DebugLevel)
	case f.quiet:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}
