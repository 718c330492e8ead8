package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scottcagno/strsearch/pkg/filesystem"
)

var (
	grepLineNumbers bool
	grepMaxMatches  int
	grepOffsets     bool
)

var grepCmd = &cobra.Command{
	Use:   "grep <pattern> <glob>",
	Short: "Print lines containing a fixed pattern",
	Long: `Walk the files matching glob and print every line containing pattern as
file:line:text. Unlike grep the pattern is matched literally.

Examples:
  search grep TODO 'pkg/search/*.go'
  search grep -m 1 --line-number=false panic '*.go'
  search grep -b Search 'pkg/search/*.go'   # file:line:offset:text`,
	Args: cobra.ExactArgs(2),
	RunE: runGrep,
}

func init() {
	grepCmd.Flags().BoolVarP(&grepLineNumbers, "line-number", "n", true, "prefix lines with their line number (overrides config)")
	grepCmd.Flags().IntVarP(&grepMaxMatches, "max-matches", "m", 0, "stop after this many lines, 0 for no limit (overrides config)")
	grepCmd.Flags().BoolVarP(&grepOffsets, "byte-offset", "b", false, "print the offset of the first match within each line")
}

func runGrep(cmd *cobra.Command, args []string) error {
	opts := filesystem.GrepOptions{
		ShowLineNumbers: cfg.Grep.ShowLineNumbers,
		ShowOffsets:     grepOffsets,
		MaxMatches:      cfg.Grep.MaxMatches,
		Logger:          lg,
	}
	if cmd.Flags().Changed("line-number") {
		opts.ShowLineNumbers = grepLineNumbers
	}
	if cmd.Flags().Changed("max-matches") {
		opts.MaxMatches = grepMaxMatches
	}
	s, err := newSearcher(args[0])
	if err != nil {
		return err
	}
	n, err := filesystem.Grep(cmd.OutOrStdout(), s, args[1], opts)
	if err != nil {
		return err
	}
	lg.Debugf("%s: %d matching lines", s, n)
	return nil
}
