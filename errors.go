package wkhtml

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration errors.
	ErrUnknownOption = errors.New("unknown option")
	ErrMissingBinary = errors.New("renderer binary path not set")

	// Option compilation errors.
	ErrInvalidOptionValue = errors.New("invalid option value")

	// Output path validation errors.
	ErrInvalidOutputPath = errors.New("invalid output path")
	ErrOutputExists      = errors.New("output file already exists")

	// Filesystem resource errors.
	ErrOutputCleanup   = errors.New("failed to remove existing output file")
	ErrOutputDirCreate = errors.New("failed to create output directory")

	// Execution errors.
	ErrProcessLaunch = errors.New("failed to launch renderer binary")

	// Post-conversion verification errors.
	ErrOutputNotCreated = errors.New("renderer did not create output file")
	ErrOutputEmpty      = errors.New("renderer created empty output file")

	// Input validation errors.
	ErrEmptyInput    = errors.New("input cannot be empty")
	ErrEmptyHTML     = errors.New("HTML content cannot be empty")
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
)
