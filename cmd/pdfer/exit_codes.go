package main

import (
	"errors"
	"os"

	"github.com/alnah/go-pdfer"
	"github.com/alnah/go-pdfer/internal/config"
	"github.com/alnah/go-pdfer/internal/discover"
)

// Exit codes for pdfer CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Operation completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or page specification
	ExitIO      = 3 // Unreadable input, missing file, failed write
	ExitAborted = 4 // User declined to resolve an output conflict
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Abort first: a split can join earlier write failures with the abort.
	if errors.Is(err, pdfer.ErrAbortedByUser) {
		return ExitAborted
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, pdfer.ErrInvalidPageSpec) ||
		errors.Is(err, pdfer.ErrPageOutOfRange) ||
		errors.Is(err, pdfer.ErrEmptyPageSelection) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, pdfer.ErrInvalidPDFFile) ||
		errors.Is(err, pdfer.ErrEmptyPDFInput) ||
		errors.Is(err, pdfer.ErrWriteFailure) ||
		errors.Is(err, pdfer.ErrNoInput) ||
		errors.Is(err, discover.ErrNotPDF) ||
		errors.Is(err, discover.ErrIsDirectory) ||
		errors.Is(err, discover.ErrPathNotFound) ||
		errors.Is(err, discover.ErrNoPDFFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
