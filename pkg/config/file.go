package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/errors"
)

// File is the decoded TOML config file. Unset keys stay nil so that they
// do not override defaults.
type File struct {
	Dictionary string `toml:"dictionary"`
	Length     *int   `toml:"length"`
	Count      *int   `toml:"count"`
	Ways       Ways   `toml:"ways"`
	FoldCase   *bool  `toml:"fold_case"`
	Workers    *int   `toml:"workers"`
	Cache      Cache  `toml:"cache"`

	// Unknown lists keys present in the file that were not recognised.
	Unknown []string `toml:"-"`
}

// Ways accepts either a TOML array of labels or a comma-separated string.
type Ways []string

// UnmarshalTOML implements toml.Unmarshaler.
func (w *Ways) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*w = strings.Split(v, ",")
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("ways: expected string, got %T", item)
			}
			out = append(out, s)
		}
		*w = out
	default:
		return fmt.Errorf("ways: expected string or array, got %T", v)
	}
	return nil
}

// DefaultFilePath returns the path of the default config file.
func DefaultFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadFile decodes the TOML config file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file %s", path)
	}
	return ParseFile(string(data))
}

// LoadDefaultFile loads the default config file. A missing file is not an
// error and yields (nil, nil).
func LoadDefaultFile() (*File, error) {
	path, err := DefaultFilePath()
	if err != nil {
		return nil, nil
	}
	f, err := LoadFile(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return nil, nil
	}
	return f, err
}

// ParseFile decodes TOML config text.
func ParseFile(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	for _, key := range md.Undecoded() {
		f.Unknown = append(f.Unknown, key.String())
	}
	if f.Length != nil && *f.Length < 0 {
		return nil, errors.New(errors.ErrCodeInvalidLength, "length %d must not be negative", *f.Length)
	}
	if f.Count != nil && *f.Count < 0 {
		return nil, errors.New(errors.ErrCodeInvalidCount, "count %d must not be negative", *f.Count)
	}
	return &f, nil
}

// Apply overlays the file's settings on base. Invalid direction labels are
// skipped and returned as warnings.
func (f *File) Apply(base Search) (Search, []string) {
	if f == nil {
		return base, nil
	}
	out := base
	if f.Length != nil {
		out.MinLength = *f.Length
	}
	if f.Count != nil {
		out.MinCount = *f.Count
	}
	if f.FoldCase != nil {
		out.FoldCase = *f.FoldCase
	}
	var warnings []string
	if len(f.Ways) > 0 {
		out.Directions, warnings = direction.ParseList(strings.Join(f.Ways, ","))
	}
	return out, warnings
}
