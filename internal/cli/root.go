package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdfence",
	Short: "Find Markdown files that end on a closing code fence",
	Long: asciiLogo + `

mdfence walks the current working directory and reports every Markdown
file whose last line is a bare closing code fence (three backticks with
nothing after them). Typical culprits: documents truncated by editors,
files assembled by concatenation, and generated Markdown cut off inside
a code block.

The scan skips .git, node_modules and .venv directories, silently
ignores unreadable files, and prints matching paths to stdout in
discovery order. It takes no arguments and reads no configuration.

Exit Codes:
  0  - Scan completed (with or without matches)
  1  - General error
  2  - CLI usage error (unexpected arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid scan configuration
  20 - Scan root could not be opened`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runScan,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for mdfence")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
