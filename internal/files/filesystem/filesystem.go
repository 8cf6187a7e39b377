package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// SkipDir is returned by a Walk callback to prune the directory it was
// just handed. The walk continues with the directory's siblings. It is
// an alias for fs.SkipDir, so either spelling works.
var SkipDir = fs.SkipDir

// File represents an individual file or directory encountered during a walk
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the path relative to the walk root
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree depth-first in lexical order,
	// calling the provided function for each file and directory.
	// The function receives the entry and any error encountered.
	// Returning SkipDir for a directory prunes its subtree; returning
	// any other error stops the walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
