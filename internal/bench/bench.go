package bench

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/scottcagno/strsearch/pkg/logger"
	"github.com/scottcagno/strsearch/pkg/search"
)

//go:embed testdata/sonnet55.txt
var DefaultText string

var ErrDisagree = errors.New("bench: algorithms disagree")

// Result is the outcome of timing one algorithm on one pattern.
type Result struct {
	Algorithm string
	Pattern   string
	Index     int
	Elapsed   time.Duration // over all rounds
}

// finder prepares a pattern once and returns the function to time.
type finder struct {
	name    string
	prepare func(pattern []byte) func(text []byte) int
}

var finders = []finder{
	{
		name: search.KnuthMorrisPratt.String(),
		prepare: func(pattern []byte) func([]byte) int {
			return search.NewKnuthMorrisPratt(pattern).Index
		},
	},
	{
		name: search.BoyerMoore.String(),
		prepare: func(pattern []byte) func([]byte) int {
			return search.NewBoyerMoore(pattern).Index
		},
	},
	{
		name: "RABIN-KARP",
		prepare: func(pattern []byte) func(text []byte) int {
			return func(text []byte) int {
				return search.IndexRabinKarp(text, pattern)
			}
		},
	},
}

// Run times every algorithm against text for each pattern, repeating each
// search rounds times. It fails with ErrDisagree if two algorithms report a
// different index for the same pattern.
func Run(log *logger.Logger, text []byte, patterns []string, rounds int) ([]Result, error) {
	if log == nil {
		log = logger.DefaultLogger
	}
	if rounds < 1 {
		rounds = 1
	}
	var results []Result
	for _, f := range finders {
		log.Debugf("timing %s over %d bytes", f.name, len(text))
		for _, p := range patterns {
			index := f.prepare([]byte(p))
			n := search.NotFound
			t1 := time.Now()
			for i := 0; i < rounds; i++ {
				n = index(text)
			}
			results = append(results, Result{
				Algorithm: f.name,
				Pattern:   p,
				Index:     n,
				Elapsed:   time.Since(t1),
			})
		}
	}
	// every finder saw the patterns in the same order
	for i := len(patterns); i < len(results); i++ {
		want := results[i%len(patterns)]
		if results[i].Index != want.Index {
			return results, fmt.Errorf("%w: %q found at %d by %s and at %d by %s", ErrDisagree,
				want.Pattern, want.Index, want.Algorithm, results[i].Index, results[i].Algorithm)
		}
	}
	return results, nil
}

// Totals sums the elapsed time per algorithm, in the order the algorithms ran.
func Totals(results []Result) ([]string, map[string]time.Duration) {
	var order []string
	totals := make(map[string]time.Duration)
	for _, r := range results {
		if _, ok := totals[r.Algorithm]; !ok {
			order = append(order, r.Algorithm)
		}
		totals[r.Algorithm] += r.Elapsed
	}
	return order, totals
}

// Write prints results as a table followed by per algorithm totals.
func Write(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 5, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tPATTERN\tINDEX\tSECONDS\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%q\t%d\t%.6f\t\n", r.Algorithm, r.Pattern, r.Index, r.Elapsed.Seconds())
	}
	fmt.Fprintln(tw, "-----\t-----\t-----\t-----\t")
	order, totals := Totals(results)
	for _, name := range order {
		fmt.Fprintf(tw, "%s\ttotal\t\t%.6f\t\n", name, totals[name].Seconds())
	}
	return tw.Flush()
}
