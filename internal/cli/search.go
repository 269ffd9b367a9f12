package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordsearch/pkg/config"
	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/pipeline"
	"github.com/matzehuels/wordsearch/pkg/report"
)

// searchOpts holds the raw flag values of the search command. Count and
// length stay strings so that non-numeric input gets the documented error.
type searchOpts struct {
	file       string
	dictionary string
	count      string
	length     string
	ways       string
	format     string
	workers    int
	foldCase   bool
	browse     bool
	configPath string
	noCache    bool
	refresh    bool
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "search -f FILENAME [flags]",
		Short: "Find dictionary words in a word search puzzle",
		Long: `Search a word search puzzle for every dictionary word.

The puzzle file holds one row per whitespace-separated token; rows may have
different lengths. Use "-f -" to read the puzzle from standard input.

Ways are given as a comma-separated list of ul, u, ur, l, r, dl, d and dr.
Unknown ways are skipped with a warning; when none remain, all eight are used.`,
		Example: `  # Search in all directions for words of 4+ letters
  wordsearch search -f puzzle.txt -l 4

  # Only horizontal and vertical, words found at least twice
  wordsearch search -f puzzle.txt -w l,r,u,d -c 2

  # Lowercase word list against an uppercase puzzle, as JSON
  wordsearch search -f puzzle.txt --fold-case --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file == "" && len(args) == 1 {
				opts.file = args[0]
			}
			return c.runSearch(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "wordsearch puzzle file (\"-\" for stdin)")
	f.StringVarP(&opts.count, "count", "c", "", fmt.Sprintf("minimum occurrences for a word to be listed (default %d)", config.DefaultMinCount))
	f.StringVarP(&opts.dictionary, "dictionary", "d", "", fmt.Sprintf("word list, one word per line (default %s)", dictionary.DefaultPath))
	f.StringVarP(&opts.length, "length", "l", "", fmt.Sprintf("minimum word length (default %d)", config.DefaultMinLength))
	f.StringVarP(&opts.ways, "ways", "w", "", "comma-separated directions to search (default all)")
	f.StringVarP(&opts.format, "format", "o", opts.format, "output format: text, json")
	f.IntVar(&opts.workers, "workers", 0, "scan rows on N goroutines (0 = sequential)")
	f.BoolVar(&opts.foldCase, "fold-case", false, "ignore letter case when matching")
	f.BoolVar(&opts.browse, "browse", false, "browse results interactively")
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordsearch/config.toml)")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the dictionary cache")
	f.BoolVar(&opts.refresh, "refresh", false, "reload the dictionary even if cached")

	return cmd
}

// runSearch resolves options, runs the pipeline and writes the report.
func (c *CLI) runSearch(cmd *cobra.Command, opts *searchOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts, cacheCfg, err := resolveOptions(cmd, opts, logger)
	if err != nil {
		return err
	}
	popts.Stdin = c.Stdin

	runner, ch := c.newRunner(ctx, opts.noCache, cacheCfg)
	defer ch.Close()

	prog := newProgress(logger)
	result, err := c.execute(ctx, runner, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d words in %d cells", result.Stats.Found, result.Stats.Cells))
	logger.Debug("run stats", "stats", result.Stats.String(), "cached", result.CacheInfo.DictionaryHit)

	if opts.browse {
		return runBrowse(ctx, result.Report)
	}
	return writeReport(c.Stdout, opts.format, result.Report, result.RunID)
}

// execute runs the pipeline behind a spinner when stderr is a terminal.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	if !stderrIsTerminal() || c.Logger.GetLevel() <= log.DebugLevel {
		return runner.Execute(ctx, opts)
	}
	spinner := newSpinnerWithContext(ctx, "Searching...")
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil && !spinner.Cancelled() {
		spinner.StopWithError("Search failed")
		return nil, err
	}
	spinner.Stop()
	return result, err
}

// resolveOptions layers defaults, the config file and explicit flags, in
// increasing precedence.
func resolveOptions(cmd *cobra.Command, opts *searchOpts, logger *log.Logger) (pipeline.Options, config.Cache, error) {
	if err := pipeline.ValidateFormat(opts.format); err != nil {
		return pipeline.Options{}, config.Cache{}, err
	}

	file, err := loadConfigFile(opts.configPath)
	if err != nil {
		return pipeline.Options{}, config.Cache{}, err
	}
	if file != nil {
		for _, key := range file.Unknown {
			logger.Warn("unknown config key", "key", key)
		}
	}

	s, warnings := file.Apply(config.Defaults())
	printWarnings(warnings)

	p := pipeline.Options{GridPath: opts.file, Refresh: opts.refresh}
	var cacheCfg config.Cache
	if file != nil {
		p.DictionaryPath = file.Dictionary
		if file.Workers != nil {
			p.Workers = *file.Workers
		}
		cacheCfg = file.Cache
		p.CacheTTL = cacheCfg.TTL
	}

	flags := cmd.Flags()
	if flags.Changed("dictionary") {
		p.DictionaryPath = opts.dictionary
	}
	if flags.Changed("count") {
		if s.MinCount, err = config.ParseCount(opts.count); err != nil {
			return pipeline.Options{}, config.Cache{}, err
		}
	}
	if flags.Changed("length") {
		if s.MinLength, err = config.ParseLength(opts.length); err != nil {
			return pipeline.Options{}, config.Cache{}, err
		}
	}
	if flags.Changed("ways") {
		s.Directions, warnings = direction.ParseList(opts.ways)
		printWarnings(warnings)
	}
	if flags.Changed("fold-case") {
		s.FoldCase = opts.foldCase
	}
	if flags.Changed("workers") {
		p.Workers = opts.workers
	}
	p.Search = s

	return p, cacheCfg, nil
}

// loadConfigFile loads path, or the default config file when path is empty.
func loadConfigFile(path string) (*config.File, error) {
	if path == "" {
		return config.LoadDefaultFile()
	}
	return config.LoadFile(path)
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		printWarning("%s", w)
	}
}

func writeReport(w io.Writer, format string, r report.Report, runID string) error {
	if format == pipeline.FormatJSON {
		return report.WriteJSON(w, r, runID)
	}
	return report.WriteText(w, r)
}
