package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// DictionaryKeyOpts identifies a filtered dictionary.
type DictionaryKeyOpts struct {
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	ModTime   time.Time `json:"mod_time"`
	MinLength int       `json:"min_length"`
	FoldCase  bool      `json:"fold_case"`
}

// Keyer builds cache keys.
type Keyer interface {
	DictionaryKey(opts DictionaryKeyOpts) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DictionaryKey returns "dict:<sha256>" for opts.
func (DefaultKeyer) DictionaryKey(opts DictionaryKeyOpts) string {
	return hashKey("dict", opts)
}
