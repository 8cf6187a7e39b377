package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/mdfence/internal/fence"
	"github.com/vvka-141/mdfence/internal/files/filesystem"
	"github.com/vvka-141/mdfence/pkg/mdfence"
)

// Scanner discovers Markdown files whose content ends on a bare closing
// code fence. Scanner is safe for concurrent use by multiple goroutines
// as long as the provided inspector and fsProvider are also thread-safe.
type Scanner struct {
	inspector  fence.Inspector
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new tree scanner with the given fence inspector.
// Uses OS filesystem by default.
// Panics if inspector is nil.
func NewScanner(inspector fence.Inspector) *Scanner {
	if inspector == nil {
		panic("inspector cannot be nil")
	}
	return &Scanner{
		inspector:  inspector,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new tree scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if inspector or fsProvider is nil.
func NewScannerWithFS(inspector fence.Inspector, fsProvider filesystem.FileSystemProvider) *Scanner {
	if inspector == nil {
		panic("inspector cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		inspector:  inspector,
		fsProvider: fsProvider,
	}
}

// ScanTree walks the tree rooted at root and collects every .md file whose
// last line trims to the closing fence marker.
//
// Directories whose normalized traversal path contains one of the excluded
// name fragments are pruned, so nothing beneath them is visited. Files
// that cannot be read are recorded in the result and skipped; entries the
// walk itself cannot reach are passed over silently.
//
// Parameters:
//   - root: Root directory to scan
//
// Returns:
//   - mdfence.ScanResult: Matching paths in discovery order, skipped
//     files, and the number of files inspected
//   - error: Only when the root itself cannot be opened
func (s *Scanner) ScanTree(root string) (mdfence.ScanResult, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return mdfence.ScanResult{}, fmt.Errorf("failed to open scan root: %w", err)
	}

	var matches []string
	var skipped []mdfence.SkippedFile
	inspected := 0

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries do not fail the scan
			return nil
		}

		relPath := normalizePath(file.RelativePath())

		if file.Info().IsDir() {
			if mdfence.IsExcludedPath(relPath) {
				return filesystem.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(file.Info().Name(), mdfence.MarkdownSuffix) {
			return nil
		}

		content, readErr := file.ReadContent()
		if readErr != nil {
			skipped = append(skipped, mdfence.SkippedFile{Path: relPath, Reason: readErr})
			return nil
		}

		inspected++
		if s.inspector.Inspect(content).TrailingFence() {
			matches = append(matches, relPath)
		}
		return nil
	})
	if err != nil {
		return mdfence.ScanResult{}, fmt.Errorf("failed to walk scan root: %w", err)
	}

	return mdfence.ScanResult{
		Matches:   matches,
		Skipped:   skipped,
		Inspected: inspected,
	}, nil
}

// normalizePath converts a walk-relative path to the reported form:
// Unix-style forward slashes with a "./" prefix. The walk root itself
// becomes "./.".
func normalizePath(relPath string) string {
	unixPath := filepath.ToSlash(relPath)
	if !strings.HasPrefix(unixPath, "./") {
		unixPath = "./" + unixPath
	}
	return unixPath
}

// Verify Scanner implements the interface at compile time
var _ mdfence.TreeScanner = (*Scanner)(nil)
