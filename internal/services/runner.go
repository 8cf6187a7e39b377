// Package services orchestrates the scan workflow behind the CLI.
package services

import (
	"fmt"
	"io"

	"github.com/vvka-141/mdfence/internal/report"
	"github.com/vvka-141/mdfence/pkg/mdfence"
)

// Runner executes one scan-and-report cycle: validate the configuration,
// walk the tree, log diagnostics, and write the report.
// Thread-Safety: safe for concurrent Run() calls as long as the scanner,
// logger, and writer are.
type Runner struct {
	scanner mdfence.TreeScanner
	logger  mdfence.Logger
	out     io.Writer
}

// NewRunner creates a new Runner with all dependencies injected.
//
// Panic vs. Error Boundary Rationale:
//   - Panics on nil dependencies: These are programmer errors that should fail
//     loudly at application startup, not during a scan. Fail-fast at
//     construction time prevents cryptic nil pointer dereferences deep in
//     call stacks.
//   - Returns errors for runtime conditions: Configuration validation and
//     filesystem failures are recoverable runtime conditions that should be
//     handled by the caller, not panics.
func NewRunner(scanner mdfence.TreeScanner, logger mdfence.Logger, out io.Writer) *Runner {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}

	return &Runner{
		scanner: scanner,
		logger:  logger,
		out:     out,
	}
}

// Run scans the configured root and writes the report to the output writer.
// Diagnostics go to the logger only; the writer receives nothing but the
// fixed report format.
func (r *Runner) Run(config mdfence.ScanConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r.logger.Verbose("Scanning %s for markdown files with a trailing fence", config.Root)

	result, err := r.scanner.ScanTree(config.Root)
	if err != nil {
		return fmt.Errorf("%w: %v", mdfence.ErrScanFailed, err)
	}

	for _, skip := range result.Skipped {
		r.logger.Verbose("Skipped unreadable file %s: %v", skip.Path, skip.Reason)
	}
	r.logger.Verbose("✓ Scan completed: inspected %d markdown file(s), %d matched, %d skipped",
		result.Inspected, len(result.Matches), len(result.Skipped))

	if err := report.Write(r.out, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
