package mdfence

import "strings"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Scan completed (finding no matches is still success)
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (unexpected args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid scan configuration
	ExitScanError    = 20 // Scan root could not be opened
)

// MarkdownSuffix is the file name suffix that marks a candidate file.
// Matching is literal and case-sensitive: "README.MD" is not a candidate.
const MarkdownSuffix = ".md"

// FenceMarker is the bare closing code-fence line the scan looks for:
// three backticks with no language tag. A file matches when its last
// line trims to exactly this string.
const FenceMarker = "```"

// ExcludedPathParts lists the directory-path substrings that prune the
// walk. Any directory whose traversal path contains one of these is
// skipped entirely, including everything beneath it.
var ExcludedPathParts = []string{".git", "node_modules", ".venv"}

// IsExcludedPath reports whether a traversal path falls under the fixed
// exclusion list. Matching is plain substring containment anywhere in
// the path, not per path segment: a directory named "my.venv-backup"
// is excluded just like ".venv" itself.
func IsExcludedPath(path string) bool {
	for _, part := range ExcludedPathParts {
		if strings.Contains(path, part) {
			return true
		}
	}
	return false
}
