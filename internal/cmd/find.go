package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottcagno/strsearch/pkg/search"
)

var findAll bool

var findCmd = &cobra.Command{
	Use:   "find <pattern> [file]",
	Short: "Print the offset of a pattern in a file or stdin",
	Long: `Print the byte offset of the first occurrence of pattern, or "not found".

Examples:
  search find ABCDABD notes.txt      # first offset
  search find --all the < book.txt   # every offset, one per line
  search find -a kmp aab data.bin    # force Knuth-Morris-Pratt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findAll, "all", false, "print every (possibly overlapping) offset")
}

func runFind(cmd *cobra.Command, args []string) error {
	s, err := newSearcher(args[0])
	if err != nil {
		return err
	}
	data, name, err := readInput(cmd, args[1:])
	if err != nil {
		return err
	}
	lg.Debugf("%s: searching %d bytes of %s", s, len(data), name)

	out := cmd.OutOrStdout()
	if !findAll {
		n := search.Search(data, s)
		if n == search.NotFound {
			fmt.Fprintln(out, "not found")
			return nil
		}
		fmt.Fprintln(out, n)
		return nil
	}
	found := search.SearchAll(data, s)
	if len(found) == 0 {
		fmt.Fprintln(out, "not found")
		return nil
	}
	for _, n := range found {
		fmt.Fprintln(out, n)
	}
	return nil
}

// readInput reads the named file, or stdin when no name is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return data, args[0], nil
}
