// Package files provides file-related functionality organized into sub-packages.
//
// This package is organized into the following sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations
//     (OS and billy-backed in-memory)
//   - scanner: Markdown discovery and trailing-fence detection
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/mdfence/internal/files/filesystem"
//	    "github.com/vvka-141/mdfence/internal/files/scanner"
//	)
//
//	// Create scanner
//	treeScanner := scanner.NewScanner(fence.New())
//	result, err := treeScanner.ScanTree(".")
//
//	// Or scan an in-memory fixture
//	mfs := filesystem.NewMemoryFileSystem()
//	treeScanner = scanner.NewScannerWithFS(fence.New(), mfs)
//
// # Organization
//
// Each sub-package is focused on a specific concern:
//   - filesystem: Provides filesystem abstraction for testability
//   - scanner: Handles tree walking, directory pruning, and candidate inspection
package files
