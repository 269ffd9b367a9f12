package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordsearch/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Found 42 words (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}

// logHooks reports search and cache events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks { return &logHooks{logger: l} }

func (h *logHooks) OnLoadComplete(_ context.Context, kind string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "kind", kind, "err", err)
		return
	}
	h.logger.Debug("loaded", "kind", kind, "size", size, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnScanStart(_ context.Context, cells, directions int) {
	h.logger.Debug("scan started", "cells", cells, "directions", directions)
}

func (h *logHooks) OnScanComplete(_ context.Context, words, occurrences int, d time.Duration) {
	h.logger.Debug("scan complete", "words", words, "occurrences", occurrences, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.SearchHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
)
