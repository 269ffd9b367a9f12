// Package config holds the validated settings of a word search run.
//
// [Search] is built once at startup from built-in defaults, an optional TOML
// config file and command-line flags (in increasing order of precedence) and
// then passed by value into the search. Nothing in this package is mutated
// after a run starts.
//
// # Config File
//
// The file is looked up at $XDG_CONFIG_HOME/wordsearch/config.toml (falling
// back to ~/.config/wordsearch/config.toml) unless --config names one:
//
//	dictionary = "/usr/share/dict/words"
//	length     = 4
//	count      = 1
//	ways       = ["r", "d", "dr"]   # or "r, d, dr"
//	fold_case  = true
//	workers    = 4
//
//	[cache]
//	dir        = "/tmp/wordsearch-cache"
//	ttl        = "168h"
//	redis_addr = "localhost:6379"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/errors"
)

const (
	// AppName names the config and cache directories.
	AppName = "wordsearch"

	// DefaultMinLength is the shortest word reported by default.
	DefaultMinLength = 3

	// DefaultMinCount is the fewest occurrences a word needs to be listed.
	DefaultMinCount = 1

	// DefaultCacheTTL is how long a filtered dictionary stays cached.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Search is the immutable configuration of one run.
type Search struct {
	MinLength  int
	MinCount   int
	Directions direction.Set
	// FoldCase upper-cases the grid and dictionary before searching.
	FoldCase bool
}

// Defaults returns the built-in search configuration.
func Defaults() Search {
	return Search{
		MinLength:  DefaultMinLength,
		MinCount:   DefaultMinCount,
		Directions: direction.AllSet(),
	}
}

// Validate checks invariants a Search must satisfy before a scan.
func (s Search) Validate() error {
	if s.MinLength < 0 {
		return errors.New(errors.ErrCodeInvalidLength, "length %d must not be negative", s.MinLength)
	}
	if s.MinCount < 0 {
		return errors.New(errors.ErrCodeInvalidCount, "count %d must not be negative", s.MinCount)
	}
	if s.Directions.Empty() {
		return errors.New(errors.ErrCodeInvalidDirection, "at least one direction is required")
	}
	return nil
}

// ParseCount parses the --count option.
func ParseCount(s string) (int, error) {
	return errors.ParseNonNegative(errors.ErrCodeInvalidCount, "count", s)
}

// ParseLength parses the --length option.
func ParseLength(s string) (int, error) {
	return errors.ParseNonNegative(errors.ErrCodeInvalidLength, "length", s)
}

// Cache configures the filtered dictionary cache.
type Cache struct {
	Dir       string        `toml:"dir"`
	TTL       time.Duration `toml:"ttl"`
	RedisAddr string        `toml:"redis_addr"`
}

// DefaultDictionary returns the system word list path.
func DefaultDictionary() string { return dictionary.DefaultPath }

// ConfigDir returns the config directory using the XDG standard
// (~/.config/wordsearch/).
func ConfigDir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// CacheDir returns the cache directory using the XDG standard
// (~/.cache/wordsearch/).
func CacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
