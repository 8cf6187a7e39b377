package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvka-141/mdfence/internal/fence"
)

// BenchmarkScanTree benchmarks tree scanning with real filesystem
func BenchmarkScanTree(b *testing.B) {
	// Create temporary directory structure for benchmarking
	tempDir := b.TempDir()

	content := strings.Repeat("A line of prose in a Markdown document.\n", 50) + "```\n"
	for i := 0; i < 10; i++ {
		filename := filepath.Join(tempDir, "doc"+string(rune('0'+i))+".md")
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			b.Fatal(err)
		}
	}

	// A subtree that gets pruned and one that does not
	pruned := filepath.Join(tempDir, "node_modules", "pkg")
	kept := filepath.Join(tempDir, "docs")
	for _, dir := range []string{pruned, kept} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			b.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(content), 0644); err != nil {
			b.Fatal(err)
		}
	}

	treeScanner := NewScanner(fence.New())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := treeScanner.ScanTree(tempDir)
		if err != nil {
			b.Fatal(err)
		}
	}
}
