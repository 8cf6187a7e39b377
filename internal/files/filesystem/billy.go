package filesystem

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// billyFile implements File interface for a billy-backed filesystem
type billyFile struct {
	bfs     billy.Filesystem
	absPath string
	relPath string
	info    FileInfo
}

func (f *billyFile) Path() string         { return f.absPath }
func (f *billyFile) RelativePath() string { return f.relPath }
func (f *billyFile) Info() FileInfo       { return f.info }

func (f *billyFile) ReadContent() ([]byte, error) {
	return util.ReadFile(f.bfs, f.absPath)
}

// billyDirectory implements Directory interface for a billy-backed filesystem
type billyDirectory struct {
	bfs     billy.Filesystem
	absPath string
}

func (d *billyDirectory) Path() string { return d.absPath }

// Walk wraps util.Walk, which mirrors filepath.Walk including SkipDir
// pruning and lexical ordering. Billy paths use forward slashes.
func (d *billyDirectory) Walk(fn func(File, error) error) error {
	return util.Walk(d.bfs, d.absPath, func(walkPath string, info os.FileInfo, walkErr error) error {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", walkPath, r)
				}
			}()

			if walkErr != nil {
				callbackErr = fn(nil, walkErr)
				return
			}

			absPath := filepath.ToSlash(walkPath)
			file := &billyFile{
				bfs:     d.bfs,
				absPath: absPath,
				relPath: relativeTo(d.absPath, absPath),
				info:    info,
			}

			callbackErr = fn(file, nil)
		}()

		return callbackErr
	})
}

// relativeTo strips the walk root from a slash-separated path.
// The root itself maps to ".".
func relativeTo(base, target string) string {
	if target == base {
		return "."
	}
	prefix := base
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.TrimPrefix(target, prefix)
}

// BillyFileSystem adapts any billy.Filesystem to the FileSystemProvider
// interface. Backed by memfs it is the in-memory filesystem used in tests;
// any other billy implementation works as well.
type BillyFileSystem struct {
	bfs billy.Filesystem
}

// NewBillyFileSystem creates a provider over an existing billy filesystem.
// Panics if bfs is nil.
func NewBillyFileSystem(bfs billy.Filesystem) *BillyFileSystem {
	if bfs == nil {
		panic("NewBillyFileSystem: bfs is required")
	}
	return &BillyFileSystem{bfs: bfs}
}

// NewMemoryFileSystem creates an empty in-memory provider.
// Paths are absolute within the virtual filesystem, e.g. "/project/a.md".
func NewMemoryFileSystem() *BillyFileSystem {
	return NewBillyFileSystem(memfs.New())
}

// AddFile writes a file, creating parent directories as needed.
func (p *BillyFileSystem) AddFile(filePath, content string) error {
	filePath = filepath.ToSlash(filePath)
	if dir := path.Dir(filePath); dir != "." && dir != "/" {
		if err := p.bfs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create parent directories for %s: %w", filePath, err)
		}
	}
	return util.WriteFile(p.bfs, filePath, []byte(content), 0644)
}

// MkdirAll creates a directory and any missing parents. Useful for
// building fixtures that contain empty directories.
func (p *BillyFileSystem) MkdirAll(dirPath string) error {
	return p.bfs.MkdirAll(filepath.ToSlash(dirPath), 0755)
}

func (p *BillyFileSystem) Open(openPath string) (Directory, error) {
	info, err := p.bfs.Stat(openPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &billyDirectory{
		bfs:     p.bfs,
		absPath: path.Clean(filepath.ToSlash(openPath)),
	}, nil
}

func (p *BillyFileSystem) ReadFile(filePath string) ([]byte, error) {
	return util.ReadFile(p.bfs, filePath)
}

func (p *BillyFileSystem) Stat(statPath string) (FileInfo, error) {
	return p.bfs.Stat(statPath)
}
