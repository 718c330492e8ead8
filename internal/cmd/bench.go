package cmd

import (
	"fmt"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/scottcagno/strsearch/internal/bench"
)

var (
	benchRounds   int
	benchPatterns string
)

var benchCmd = &cobra.Command{
	Use:   "bench [file]",
	Short: "Time every algorithm against a text",
	Long: `Time Knuth-Morris-Pratt, Boyer-Moore and Rabin-Karp on the same text and
patterns. Without a file a built in sonnet is used.

Examples:
  search bench
  search bench -r 1000 -p "'gilded monuments' foo_DOES_NOT_EXIST" book.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchRounds, "rounds", "r", 0, "times to repeat each search (overrides config)")
	benchCmd.Flags().StringVarP(&benchPatterns, "patterns", "p", "", "shell quoted list of patterns (overrides config)")
}

func runBench(cmd *cobra.Command, args []string) error {
	text := []byte(bench.DefaultText)
	if len(args) > 0 {
		data, _, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		text = data
	}
	patterns := cfg.Bench.Patterns
	if benchPatterns != "" {
		words, err := shlex.Split(benchPatterns)
		if err != nil {
			return fmt.Errorf("bad --patterns: %w", err)
		}
		patterns = words
	}
	rounds := cfg.Bench.Rounds
	if benchRounds > 0 {
		rounds = benchRounds
	}
	lg.Infof("timing %d patterns over %d bytes, %d rounds", len(patterns), len(text), rounds)
	results, err := bench.Run(lg, text, patterns, rounds)
	if err != nil {
		return err
	}
	return bench.Write(cmd.OutOrStdout(), results)
}
