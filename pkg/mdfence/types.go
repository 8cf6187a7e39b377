package mdfence

import (
	"errors"
	"fmt"
)

// ScanConfig contains all parameters needed for a tree scan.
type ScanConfig struct {
	// Root is the directory the scan starts from. The CLI binds this to
	// the process working directory; library callers may point it anywhere.
	Root string

	// Verbose enables detailed stderr logging during the scan.
	// It never changes what is written to stdout.
	Verbose bool
}

// Validate checks if the ScanConfig has all required fields.
// It returns a multi-error if multiple validation failures occur.
func (c *ScanConfig) Validate() error {
	var errs []error

	if c.Root == "" {
		errs = append(errs, fmt.Errorf("Root is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// SkippedFile records a candidate file whose content could not be read.
// Skips are a normal part of a scan: the walk continues and the file
// simply contributes nothing to the report.
type SkippedFile struct {
	// Path is the normalized traversal path of the file ("./docs/a.md").
	Path string

	// Reason is the read error that caused the skip.
	Reason error
}

// ScanResult contains the results of scanning a directory tree.
// All paths use Unix-style forward slashes with a "./" prefix, relative
// to the scan root, in the order the walk discovered them.
type ScanResult struct {
	// Matches lists the Markdown files whose final line is a bare
	// closing code fence, in discovery order.
	Matches []string

	// Skipped records candidate files that could not be read. These are
	// deliberately absent from Matches and from the printed report; they
	// surface only through verbose logging.
	Skipped []SkippedFile

	// Inspected is the number of candidate files whose content was
	// actually examined (read successfully, whether or not they matched).
	Inspected int
}
