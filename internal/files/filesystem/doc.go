// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for walking directory trees and reading
// file content, enabling testability through in-memory implementations while
// maintaining compatibility with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory tree that can be walked, with
//     SkipDir-based pruning
//   - File: Represents an individual entry with metadata and content
//   - FileInfo: File metadata, aliased from io/fs
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - BillyFileSystem: Adapter over any go-billy filesystem; backed by
//     memfs it serves as the in-memory implementation for tests
package filesystem
