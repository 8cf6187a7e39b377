// Package scanner provides Markdown file discovery and trailing-fence detection.
//
// The scanner package is responsible for:
//   - Walking a directory tree depth-first in lexical order
//   - Pruning directories whose traversal path contains an excluded name
//   - Reading each .md file and inspecting its final line
//   - Collecting matching paths in discovery order
//
// The scan is best-effort: unreadable files are recorded and skipped, and
// unreadable subdirectories are passed over silently. Only a root that
// cannot be opened at all fails the scan.
//
// The scanner is filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
