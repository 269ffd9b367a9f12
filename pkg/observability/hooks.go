// Package observability provides hooks for instrumenting word search runs.
//
// Hooks let a caller observe loading, scanning and cache activity without the
// search packages depending on any metrics or tracing backend. Defaults are
// no-ops; main registers real implementations at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSearchHooks(&myHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnScanStart(ctx, cells, dirs)
//	// ... scan ...
//	observability.Search().OnScanComplete(ctx, words, occurrences, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// Input kinds reported by OnLoadComplete.
const (
	KindGrid       = "grid"
	KindDictionary = "dictionary"
)

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from a search run.
type SearchHooks interface {
	// OnLoadComplete reports that an input (KindGrid or KindDictionary) was
	// loaded with size items.
	OnLoadComplete(ctx context.Context, kind string, size int, duration time.Duration, err error)

	// OnScanStart reports the number of start cells and enabled directions.
	OnScanStart(ctx context.Context, cells, directions int)

	// OnScanComplete reports distinct words and total occurrences found.
	OnScanComplete(ctx context.Context, words, occurrences int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopSearchHooks) OnScanStart(context.Context, int, int)                            {}
func (NoopSearchHooks) OnScanComplete(context.Context, int, int, time.Duration)          {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks. Nil is ignored.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	cacheHooks = NoopCacheHooks{}
}
