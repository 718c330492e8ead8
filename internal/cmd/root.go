package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottcagno/strsearch/internal/config"
	"github.com/scottcagno/strsearch/pkg/logger"
	"github.com/scottcagno/strsearch/pkg/search"
)

var (
	configPath    string
	algorithmName string
	logLevelName  string
	logCaller     bool
	noColor       bool
)

// set up by loadConfig before any subcommand runs
var (
	cfg *config.Config
	lg  *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "search",
	Short: "substring search with Knuth-Morris-Pratt and Boyer-Moore",
	Long: `search - find fixed patterns in text
  - find   first (or every) offset of a pattern in a file or stdin
  - grep   lines containing a pattern across files
  - bench  time the algorithms against each other
  - table  show the precomputed shift tables for a pattern`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVarP(&algorithmName, "algorithm", "a", "", "kmp or bm (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelName, "log-level", "", "trace, debug, info, warn, error or off (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&logCaller, "log-caller", false, "prefix log lines with the calling function and file:line")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "never color log levels")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(grepCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(tableCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if algorithmName != "" {
		c.Algorithm = algorithmName
	}
	if logLevelName != "" {
		c.LogLevel = logLevelName
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	lg = logger.NewLogger(cmd.ErrOrStderr())
	lg.SetLevel(cfg.Level())
	lg.SetPrintFunc(logCaller)
	lg.SetPrintFile(logCaller)
	if noColor {
		lg.SetColor(false)
	}
	lg.Debugf("using %s", cfg.SearchAlgorithm())
	return nil
}

func newSearcher(pattern string) (*search.Searcher[byte], error) {
	alg, err := search.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("algorithm %q: %w", cfg.Algorithm, err)
	}
	return search.New(alg, []byte(pattern))
}
