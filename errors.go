package pdfer

import "errors"

// Sentinel errors for library operations.
var (
	// Page specification errors.
	ErrInvalidPageSpec    = errors.New("invalid page specification")
	ErrPageOutOfRange     = errors.New("page out of range")
	ErrEmptyPageSelection = errors.New("no pages selected")

	// Input errors.
	ErrNoInput        = errors.New("no input files provided")
	ErrInvalidPDFFile = errors.New("invalid PDF file")
	ErrEmptyPDFInput  = errors.New("PDF has no pages")

	// Output errors.
	ErrOutputConflict = errors.New("output already exists")
	ErrWriteFailure   = errors.New("failed to write output")
	ErrAbortedByUser  = errors.New("aborted by user")
)
