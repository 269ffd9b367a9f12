// Package pipeline runs a complete word search: load → scan → report.
//
// The CLI builds an [Options] value from defaults, the config file and flags,
// then hands it to a [Runner]. The runner validates the inputs, loads the
// puzzle grid and the (possibly cached) filtered dictionary, scans the grid
// and aggregates the matches into a [report.Report].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    GridPath: "puzzle.txt",
//	    Search:   config.Defaults(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Report)
//
// Validation failures are returned as structured errors from
// [github.com/matzehuels/wordsearch/pkg/errors] before any scanning starts.
package pipeline

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordsearch/pkg/config"
	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/errors"
	"github.com/matzehuels/wordsearch/pkg/grid"
	"github.com/matzehuels/wordsearch/pkg/report"
	"github.com/matzehuels/wordsearch/pkg/search"
)

// StdinPath is the grid path that reads the puzzle from standard input.
const StdinPath = "-"

// Format constants for report output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported report formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidateFormat checks that a report format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one run.
type Options struct {
	// GridPath is the puzzle file, or StdinPath.
	GridPath string `json:"grid_path"`
	// DictionaryPath is the word list; empty means dictionary.DefaultPath.
	DictionaryPath string `json:"dictionary_path,omitempty"`

	Search  config.Search `json:"-"`
	Workers int           `json:"workers,omitempty"`

	// Refresh skips the cache lookup but still stores the result.
	Refresh  bool          `json:"refresh,omitempty"`
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	Stdin  io.Reader   `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.GridPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "a wordsearch file is required (-f FILENAME)")
	}
	if o.GridPath != StdinPath {
		if err := errors.ValidatePath("wordsearch", o.GridPath); err != nil {
			return err
		}
	}
	if o.DictionaryPath == "" {
		o.DictionaryPath = dictionary.DefaultPath
	}
	if err := errors.ValidatePath("dictionary", o.DictionaryPath); err != nil {
		return err
	}
	if err := o.Search.Validate(); err != nil {
		return err
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = config.DefaultCacheTTL
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a run.
type Result struct {
	// RunID uniquely identifies this run in logs and JSON output.
	RunID string

	Grid       *grid.Grid
	Dictionary *dictionary.Set
	Index      *search.Index
	Report     report.Report

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains run statistics.
type Stats struct {
	Rows        int
	Cells       int
	Words       int // dictionary size after filtering
	Found       int // distinct words found
	Occurrences int
	LoadTime    time.Duration
	ScanTime    time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	DictionaryHit bool
}
