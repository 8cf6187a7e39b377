// Package report renders scan results in the fixed output format.
package report

import (
	"fmt"
	"io"

	"github.com/vvka-141/mdfence/pkg/mdfence"
)

// Header precedes the path list when at least one file matched.
const Header = "Files with trailing fence:"

// NoMatches is the complete output when the scan found nothing.
const NoMatches = "No markdown files end with a trailing fence (```)."

// Write renders the result to w. With no matches it emits the NoMatches
// line; otherwise the header followed by one path per line, preserving
// discovery order. Nothing else is ever written.
func Write(w io.Writer, result mdfence.ScanResult) error {
	if len(result.Matches) == 0 {
		_, err := fmt.Fprintln(w, NoMatches)
		return err
	}

	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for _, path := range result.Matches {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return err
		}
	}
	return nil
}
