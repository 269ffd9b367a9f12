package cache

// ScopedKeyer wraps a Keyer with a prefix so that several applications can
// share one Redis database without key collisions.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "wordsearch:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DictionaryKey generates a prefixed key for a filtered dictionary.
func (k *ScopedKeyer) DictionaryKey(opts DictionaryKeyOpts) string {
	return k.prefix + k.inner.DictionaryKey(opts)
}
