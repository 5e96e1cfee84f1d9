// Package observability exposes event hooks for sheet layout, rendering,
// the artifact cache and the HTTP server.
//
// Nothing here depends on a metrics or tracing backend. main (or a test)
// registers implementations once at startup; the library packages only
// call the getters:
//
//	observability.SetPipelineHooks(promHooks{})
//
//	observability.Pipeline().OnLayout(ctx, observability.LayoutEvent{
//	    Pages: 1, Rows: 10, Cols: 4, Tiles: 40,
//	})
//
// Unregistered categories fall back to no-op implementations, so callers
// never check for nil.
package observability

import (
	"context"
	"sync"
	"time"
)

// LayoutEvent describes one completed (or failed) sheet layout.
type LayoutEvent struct {
	Pages int
	Rows  int
	Cols  int
	Tiles int

	// PoolRestarts counts how often the value pool ran out and started a
	// new cycle while the sheet was filled.
	PoolRestarts int

	Duration time.Duration
	Err      error
}

// RenderEvent describes one artifact rendered by a sink.
type RenderEvent struct {
	Format   string
	Bytes    int
	Duration time.Duration
	Err      error
}

// PipelineHooks receives layout and render events.
type PipelineHooks interface {
	OnLayout(ctx context.Context, ev LayoutEvent)
	OnRender(ctx context.Context, ev RenderEvent)
}

// CacheHooks receives artifact cache events, keyed by output format.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, format string)
	OnCacheMiss(ctx context.Context, format string)
	OnCacheSet(ctx context.Context, format string, size int)
}

// HTTPHooks receives server events. route is the matched route pattern
// (e.g. "/v1/decode/{value}"), not the raw path.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayout(context.Context, LayoutEvent) {}
func (NoopPipelineHooks) OnRender(context.Context, RenderEvent) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                       {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var hooks = &registry{
	pipeline: NoopPipelineHooks{},
	cache:    NoopCacheHooks{},
	http:     NoopHTTPHooks{},
}

// SetPipelineHooks registers h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.pipeline = h
	hooks.mu.Unlock()
}

// SetCacheHooks registers h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.cache = h
	hooks.mu.Unlock()
}

// SetHTTPHooks registers h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.http = h
	hooks.mu.Unlock()
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.pipeline
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.cache
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.http
}

// Reset restores the no-op hooks. Tests call it in t.Cleanup.
func Reset() {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	hooks.pipeline = NoopPipelineHooks{}
	hooks.cache = NoopCacheHooks{}
	hooks.http = NoopHTTPHooks{}
}
