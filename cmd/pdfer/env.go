package main

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/alnah/go-pdfer"
	"github.com/alnah/go-pdfer/internal/config"
	"github.com/alnah/go-pdfer/internal/pdfdoc"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and document access.
type Environment struct {
	Now        func() time.Time
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func() bool    // Reports whether Stdin is interactive
	Accessor   pdfer.Accessor // Nil = pdfcpu accessor logging to the command logger
	Config     *config.Config // Base config when no file is named
}

// DefaultEnv returns production environment reading the process stdin.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 -- file descriptors fit in int
		},
		Config: config.DefaultConfig(),
	}
}

// accessor returns the injected accessor or a pdfcpu one bound to log.
func (e *Environment) accessor(log logrus.FieldLogger) pdfer.Accessor {
	if e.Accessor != nil {
		return e.Accessor
	}
	return pdfdoc.New(log)
}

// interactive reports whether conflicts can be asked on Stdin.
func (e *Environment) interactive() bool {
	return e.IsTerminal != nil && e.IsTerminal()
}
