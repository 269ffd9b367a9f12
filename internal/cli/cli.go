// Package cli implements the wordsearch command-line interface.
//
// # Commands
//
//   - search: scan a puzzle file for dictionary words and print the report
//   - cache: inspect or clear the filtered dictionary cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and retrieved with loggerFromContext.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordsearch/pkg/buildinfo"
	"github.com/matzehuels/wordsearch/pkg/cache"
	"github.com/matzehuels/wordsearch/pkg/config"
	"github.com/matzehuels/wordsearch/pkg/observability"
	"github.com/matzehuels/wordsearch/pkg/pipeline"
)

// redisKeyPrefix namespaces keys in a shared Redis database.
const redisKeyPrefix = config.AppName + ":"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stdin  io.Reader
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdout: os.Stdout,
		Stdin:  os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Find dictionary words hidden in a word search puzzle",
		Long: `wordsearch scans a grid of letters like a word search puzzle, walking in up to
eight directions from every cell, and lists every dictionary word it finds.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := newLogHooks(c.Logger)
			observability.SetSearchHooks(hooks)
			observability.SetCacheHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The returned cache must
// be closed by the caller.
func (c *CLI) newRunner(ctx context.Context, noCache bool, cfg config.Cache) (*pipeline.Runner, cache.Cache) {
	logger := loggerFromContext(ctx)
	if noCache {
		ch := cache.NewNullCache()
		return pipeline.NewRunner(ch, nil, logger), ch
	}
	if cfg.RedisAddr != "" {
		ch, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err == nil {
			keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), redisKeyPrefix)
			return pipeline.NewRunner(ch, keyer, logger), ch
		}
		logger.Warn("redis cache unavailable, using file cache", "addr", cfg.RedisAddr, "err", err)
	}
	ch := newFileCache(cfg)
	return pipeline.NewRunner(ch, nil, logger), ch
}

// newFileCache opens the file cache, falling back to no caching when the
// directory cannot be created.
func newFileCache(cfg config.Cache) cache.Cache {
	dir, err := cacheDir(cfg)
	if err != nil {
		return cache.NewNullCache()
	}
	ch, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return ch
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns cfg.Dir when set, else the XDG cache directory
// (~/.cache/wordsearch/).
func cacheDir(cfg config.Cache) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	return config.CacheDir()
}
