package mdfence

// TreeScanner defines the interface for discovering Markdown files whose
// final line is a bare closing code fence.
// Implementations must be safe for concurrent use by multiple goroutines.
type TreeScanner interface {
	// ScanTree recursively walks the tree rooted at root and returns the
	// matching files in discovery order. Directories whose traversal path
	// contains an excluded substring are pruned entirely.
	//
	// The scan is best-effort: candidate files that cannot be read are
	// recorded in ScanResult.Skipped and the walk continues. The only
	// error case is a root that cannot be opened as a directory.
	ScanTree(root string) (ScanResult, error)
}
