package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wordsearch/pkg/cache"
	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/errors"
	"github.com/matzehuels/wordsearch/pkg/grid"
	"github.com/matzehuels/wordsearch/pkg/observability"
	"github.com/matzehuels/wordsearch/pkg/report"
	"github.com/matzehuels/wordsearch/pkg/search"
)

const keyTypeDictionary = "dictionary"

// Runner executes searches with dictionary caching.
//
// A Runner holds no per-run state; several goroutines may call Execute
// concurrently with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs load → scan → report.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID[:8])

	loadStart := time.Now()
	g, err := r.LoadGrid(ctx, opts)
	if err != nil {
		return nil, err
	}
	dict, hit, err := r.LoadDictionary(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Grid = g
	result.Dictionary = dict
	result.CacheInfo.DictionaryHit = hit
	result.Stats.Rows = g.Height()
	result.Stats.Cells = g.Cells()
	result.Stats.Words = dict.Len()
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Debug("loaded inputs",
		"rows", g.Height(),
		"cells", g.Cells(),
		"words", dict.Len(),
		"cached", hit,
		"duration", result.Stats.LoadTime)

	dirs := opts.Search.Directions
	observability.Search().OnScanStart(ctx, g.Cells(), dirs.Len())
	scanStart := time.Now()
	idx, err := search.ScanWithOptions(ctx, g, dict, dirs, search.Options{Workers: opts.Workers})
	if err != nil {
		return nil, err
	}
	result.Stats.ScanTime = time.Since(scanStart)
	observability.Search().OnScanComplete(ctx, idx.Len(), idx.Total(), result.Stats.ScanTime)

	result.Index = idx
	result.Stats.Found = idx.Len()
	result.Stats.Occurrences = idx.Total()
	result.Report = report.Build(idx, opts.Search.MinCount, opts.Search.MinLength, dirs)

	logger.Info("scanned grid",
		"directions", dirs.String(),
		"found", idx.Len(),
		"matches", idx.Total(),
		"reported", len(result.Report.Entries),
		"duration", result.Stats.ScanTime)

	return result, nil
}

// LoadGrid reads the puzzle, folding case when configured.
func (r *Runner) LoadGrid(ctx context.Context, opts Options) (*grid.Grid, error) {
	start := time.Now()
	var (
		g   *grid.Grid
		err error
	)
	if opts.GridPath == StdinPath {
		g, err = grid.Read(opts.Stdin)
	} else {
		g, err = grid.Load(opts.GridPath)
	}
	if err != nil {
		observability.Search().OnLoadComplete(ctx, observability.KindGrid, 0, time.Since(start), err)
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read wordsearch file %s", opts.GridPath)
	}
	observability.Search().OnLoadComplete(ctx, observability.KindGrid, g.Height(), time.Since(start), nil)
	if opts.Search.FoldCase {
		g = g.Fold()
	}
	return g, nil
}

// LoadDictionary returns the filtered dictionary, from cache when possible.
// The bool reports a cache hit.
func (r *Runner) LoadDictionary(ctx context.Context, opts Options) (*dictionary.Set, bool, error) {
	start := time.Now()
	info, err := os.Stat(opts.DictionaryPath)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "dictionary file %s does not exist", opts.DictionaryPath)
	}
	key := r.Keyer.DictionaryKey(cache.DictionaryKeyOpts{
		Path:      opts.DictionaryPath,
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		MinLength: opts.Search.MinLength,
		FoldCase:  opts.Search.FoldCase,
	})

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("dictionary cache read failed", "err", err)
		}
		if hit {
			dict, err := dictionary.Read(bytes.NewReader(data), opts.Search.MinLength)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeDictionary)
				observability.Search().OnLoadComplete(ctx, observability.KindDictionary, dict.Len(), time.Since(start), nil)
				return dict, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeDictionary)
	}

	dict, err := dictionary.Load(opts.DictionaryPath, opts.Search.MinLength)
	if err != nil {
		observability.Search().OnLoadComplete(ctx, observability.KindDictionary, 0, time.Since(start), err)
		return nil, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "read dictionary file %s", opts.DictionaryPath)
	}
	if opts.Search.FoldCase {
		dict = dict.Fold()
	}
	observability.Search().OnLoadComplete(ctx, observability.KindDictionary, dict.Len(), time.Since(start), nil)

	var buf bytes.Buffer
	if _, err := dict.WriteTo(&buf); err == nil {
		if err := r.Cache.Set(ctx, key, buf.Bytes(), opts.CacheTTL); err != nil {
			r.Logger.Warn("dictionary cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeDictionary, buf.Len())
		}
	}
	return dict, false, nil
}

// String summarises the stats for debug output.
func (s Stats) String() string {
	return fmt.Sprintf("%d rows, %d cells, %d words, %d found (%d matches)",
		s.Rows, s.Cells, s.Words, s.Found, s.Occurrences)
}
