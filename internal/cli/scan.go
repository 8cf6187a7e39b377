package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vvka-141/mdfence/internal/fence"
	"github.com/vvka-141/mdfence/internal/files/scanner"
	"github.com/vvka-141/mdfence/internal/logging"
	"github.com/vvka-141/mdfence/internal/services"
	"github.com/vvka-141/mdfence/pkg/mdfence"
)

// runScan is the root command action: scan the tree rooted at the
// current working directory and print the report to stdout.
func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return scanInto(os.Stdout, root, verbose)
}

// scanInto wires the production scan pipeline and writes the report to w.
func scanInto(w io.Writer, root string, verbose bool) error {
	logger := logging.NewConsoleLogger(verbose)
	treeScanner := scanner.NewScanner(fence.New())
	runner := services.NewRunner(treeScanner, logger, w)

	return runner.Run(mdfence.ScanConfig{
		Root:    root,
		Verbose: verbose,
	})
}
