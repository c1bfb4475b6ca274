package pdfer

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Defaults for engine configuration.
const (
	DefaultMergeOutput = "merged.pdf"
	DefaultPagePadding = 3
	DefaultFileMode    = os.FileMode(0o644)
)

// Option configures a Merger or Splitter.
type Option func(*engineConfig)

// engineConfig holds configuration shared by both engines.
type engineConfig struct {
	log         logrus.FieldLogger
	decider     ConflictDecider
	perm        os.FileMode
	padding     int
	stopOnError bool
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		log:     orDiscard(nil),
		decider: ChoicePolicy(ChoiceAbort),
		perm:    DefaultFileMode,
		padding: DefaultPagePadding,
	}
}

// WithLogger sets the logger receiving debug events. Nil discards them.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *engineConfig) {
		c.log = orDiscard(log)
	}
}

// WithConflictDecider sets how existing outputs are handled.
// Without it, any existing output aborts the operation.
func WithConflictDecider(d ConflictDecider) Option {
	return func(c *engineConfig) {
		if d != nil {
			c.decider = d
		}
	}
}

// WithFileMode sets the permissions of written files.
// Panics if perm has no owner write bit (programmer error).
func WithFileMode(perm os.FileMode) Option {
	if perm&0o200 == 0 {
		panic("pdfer: WithFileMode permissions must be writable by owner")
	}
	return func(c *engineConfig) {
		c.perm = perm
	}
}

// WithPagePadding sets the zero-pad width of page numbers in split file
// names. Zero disables padding. Negative values are ignored.
func WithPagePadding(width int) Option {
	return func(c *engineConfig) {
		if width >= 0 {
			c.padding = width
		}
	}
}

// WithStopOnError makes Split stop at the first failed target instead of
// attempting the rest.
func WithStopOnError(stop bool) Option {
	return func(c *engineConfig) {
		c.stopOnError = stop
	}
}

func orDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
