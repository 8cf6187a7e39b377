package fence

import (
	"strings"

	"github.com/vvka-141/mdfence/pkg/mdfence"
)

// Inspector is an interface for examining how a file's content ends.
// This abstraction allows the scanner to be tested against stub verdicts
// and leaves room for stricter detection strategies.
type Inspector interface {
	// Inspect splits content into lines and describes the final one.
	Inspect(content []byte) Verdict
}

// Verdict describes the outcome of inspecting one file's content.
type Verdict struct {
	// Lines is the number of lines the content splits into.
	// Empty content has zero lines.
	Lines int

	// LastLine is the final line with its terminator removed.
	// It is the empty string when Lines is zero.
	LastLine string
}

// TrailingFence reports whether the last line, stripped of surrounding
// whitespace, is exactly the closing fence marker. Content with no lines
// never matches.
func (v Verdict) TrailingFence() bool {
	if v.Lines == 0 {
		return false
	}
	return strings.TrimSpace(v.LastLine) == mdfence.FenceMarker
}

// Literal implements trailing-fence detection by literal comparison of
// the trimmed last line. It follows the mdfence line rules:
//  1. \n, \r\n, and a lone \r all terminate a line
//  2. Terminators are discarded; they close a line, never open one
//  3. Bytes after the last terminator form a final, unterminated line
//
// Literal is a zero-size type and is safe for concurrent use by multiple
// goroutines. Using value semantics (pass by value) eliminates heap
// allocations.
type Literal struct{}

// New creates a new literal inspector.
// Returns by value to avoid heap allocation (Literal is a zero-size type).
func New() Literal {
	return Literal{}
}

// Inspect walks the content once, counting lines and remembering the
// boundaries of the last one. Only the last line is materialized as a
// string.
func (Literal) Inspect(content []byte) Verdict {
	lines := 0
	start := 0
	lastStart, lastEnd := 0, 0

	i := 0
	for i < len(content) {
		ch := content[i]
		if ch != '\n' && ch != '\r' {
			i++
			continue
		}

		lastStart, lastEnd = start, i
		lines++
		i++
		if ch == '\r' && i < len(content) && content[i] == '\n' {
			i++
		}
		start = i
	}

	if start < len(content) {
		lastStart, lastEnd = start, len(content)
		lines++
	}

	if lines == 0 {
		return Verdict{}
	}
	return Verdict{
		Lines:    lines,
		LastLine: string(content[lastStart:lastEnd]),
	}
}
