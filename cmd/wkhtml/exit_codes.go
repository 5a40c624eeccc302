package main

import (
	"errors"
	"os"

	wkhtml "github.com/alnah/go-wkhtml"
)

// Exit codes for the wkhtml CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, options, or output path state
	ExitIO       = 3 // File not found, permission denied, cleanup failures
	ExitRenderer = 4 // Renderer launch or verification failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if errors.Is(err, wkhtml.ErrProcessLaunch) ||
		errors.Is(err, wkhtml.ErrOutputNotCreated) ||
		errors.Is(err, wkhtml.ErrOutputEmpty) {
		return ExitRenderer
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadStdin) ||
		errors.Is(err, wkhtml.ErrOutputCleanup) ||
		errors.Is(err, wkhtml.ErrOutputDirCreate) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrInvalidSetFlag) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, wkhtml.ErrUnknownOption) ||
		errors.Is(err, wkhtml.ErrInvalidOptionValue) ||
		errors.Is(err, wkhtml.ErrMissingBinary) ||
		errors.Is(err, wkhtml.ErrInvalidOutputPath) ||
		errors.Is(err, wkhtml.ErrOutputExists) ||
		errors.Is(err, wkhtml.ErrEmptyInput) ||
		errors.Is(err, wkhtml.ErrEmptyHTML) ||
		errors.Is(err, wkhtml.ErrEmptyMarkdown) {
		return ExitUsage
	}

	return ExitGeneral
}
