// Package fence decides whether Markdown content ends on a bare closing
// code fence.
//
// The package implements mdfence's single content rule:
//
//   - Split content into lines on \n, \r\n, or a lone \r, discarding the
//     terminators. A terminator closes the line before it and never opens
//     a trailing empty line, so "```\n" has exactly one line.
//   - Take the last line, strip leading and trailing whitespace, and
//     compare it to the three-character marker "```".
//
// Only that literal comparison is performed. The inspector does not parse
// Markdown, does not pair opening and closing fences, and does not care
// whether the fence is syntactically balanced. "```python" is not a match
// because the trimmed line is longer than the marker; "````" is not a
// match for the same reason.
//
// # Example Usage
//
//	inspector := fence.New()
//	verdict := inspector.Inspect(fileContent)
//	if verdict.TrailingFence() {
//		// report the file
//	}
//
// # Thread Safety
//
// Literal is safe for concurrent use by multiple goroutines.
package fence
