package mdfence

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := scanner.ScanTree(root)
//	if errors.Is(err, mdfence.ErrScanFailed) {
//	    // Handle an unopenable scan root
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScanFailed indicates the scan root could not be opened.
	// Per-file read failures never carry this error; they are recorded
	// in ScanResult.Skipped and the scan keeps going.
	ErrScanFailed = errors.New("scan failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrScanFailed):
		return ExitScanError
	}

	// Check for cobra usage error patterns
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "accepts") {
		return ExitUsageError
	}

	return ExitGeneralError
}
