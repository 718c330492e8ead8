package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scottcagno/strsearch/pkg/search"
)

var tableCmd = &cobra.Command{
	Use:   "table <pattern>",
	Short: "Print the precomputed tables for a pattern",
	Long: `Print the Knuth-Morris-Pratt failure function and the Boyer-Moore good
suffix and bad character shifts for pattern.

Example:
  search table ABCDABD`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	pattern := []byte(args[0])
	kmp := search.NewKnuthMorrisPratt(pattern)
	bm := search.NewBoyerMoore(pattern)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 5, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tELEMENT\tFAILURE\tGOOD-SUFFIX\t")
	failure, goodSuffix := kmp.FailureTable(), bm.GoodSuffixTable()
	for i, c := range pattern {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t\n", i, strconv.QuoteRune(rune(c)), failure[i], goodSuffix[i])
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ELEMENT\tBAD-CHAR\t")
	seen := make(map[byte]bool)
	for _, c := range pattern {
		if seen[c] {
			continue
		}
		seen[c] = true
		fmt.Fprintf(tw, "%s\t%d\t\n", strconv.QuoteRune(rune(c)), bm.BadCharShift(c))
	}
	fmt.Fprintf(tw, "*\t%d\t\n", len(pattern))
	return tw.Flush()
}
