package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/dominosheet/pkg/cache"
	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/observability"
	"github.com/matzehuels/dominosheet/pkg/pool"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options; every run builds its own value pool.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{DocumentID: uuid.NewString()}
	result.Seed, result.SeedDrawn = opts.ResolveSeed()

	// Stage 1: Layout
	sheet, stats, err := r.BuildSheet(ctx, opts, result.Seed)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Sheet = sheet
	result.Stats = stats

	// Stage 2: Render
	renderStart := time.Now()
	meta := RenderMeta{DocumentID: result.DocumentID, Seed: result.Seed}
	artifacts, info, err := r.RenderWithCacheInfo(ctx, sheet, opts, meta, !result.SeedDrawn)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo = info
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(info.Hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildSheet fills a fresh pool from the options and lays out every page.
// It is the layout stage of Execute, exposed for callers that draw the
// sheet themselves.
func (r *Runner) BuildSheet(ctx context.Context, opts Options, seed uint64) (layout.Sheet, Stats, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	if u := opts.GeomUnit(); !u.Known() {
		opts.Logger.Warn("unknown unit, using inches", "unit", opts.Unit)
	}

	values, err := opts.CandidateValues()
	if err != nil {
		return layout.Sheet{}, Stats{}, err
	}
	p := pool.New(values, opts.PoolOptions(seed)...)

	start := time.Now()
	sheet, err := layout.Build(opts.Page, opts.Tile(), p, opts.LayoutOptions())
	elapsed := time.Since(start)
	observability.Pipeline().OnLayout(ctx, observability.LayoutEvent{
		Pages:        len(sheet.Pages),
		Rows:         sheet.Grid.Rows,
		Cols:         sheet.Grid.Cols,
		Tiles:        sheet.TileCount(),
		PoolRestarts: p.Restarts(),
		Duration:     elapsed,
		Err:          err,
	})
	if err != nil {
		return layout.Sheet{}, Stats{}, err
	}

	stats := Stats{
		Pages:      len(sheet.Pages),
		Rows:       sheet.Grid.Rows,
		Cols:       sheet.Grid.Cols,
		Tiles:      sheet.TileCount(),
		Candidates: p.Len(),
		CycleLen:   p.CycleLength(),
		LayoutTime: elapsed,
	}

	if sheet.Grid.Empty() && opts.Page.Count > 0 {
		opts.Logger.Warn("no tile fits the work area",
			"work_width", opts.Page.WorkWidth(),
			"work_height", opts.Page.WorkHeight(),
			"unit", opts.Unit)
	}
	if stats.Tiles > stats.CycleLen && stats.CycleLen > 0 {
		opts.Logger.Debug("value pool restarted during layout",
			"tiles", stats.Tiles,
			"cycle", stats.CycleLen,
			"restarts", p.Restarts())
	}
	opts.Logger.Info("computed layout",
		"pages", stats.Pages,
		"rows", stats.Rows,
		"cols", stats.Cols,
		"tiles", stats.Tiles,
		"duration", elapsed)

	return sheet, stats, nil
}

// RenderWithCacheInfo generates artifacts, serving them from the cache when
// cacheable is set. JSON output carries a per-run document id and is never
// cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s layout.Sheet, opts Options, meta RenderMeta, cacheable bool) (map[string][]byte, CacheInfo, error) {
	opts.SetDefaults()
	return r.render(ctx, s, opts, meta, cacheable)
}

func (r *Runner) render(ctx context.Context, s layout.Sheet, opts Options, meta RenderMeta, cacheable bool) (map[string][]byte, CacheInfo, error) {
	info := CacheInfo{Enabled: cacheable}
	artifacts := make(map[string][]byte, len(opts.Formats))

	var sheetHash string
	if cacheable {
		h, err := cache.HashJSON(s)
		if err != nil {
			return nil, info, fmt.Errorf("hash sheet for cache key: %w", err)
		}
		sheetHash = h
	}

	var missing []string
	cacheHooks := observability.Cache()
	for _, format := range opts.Formats {
		if !cacheable || format == FormatJSON || opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(sheetHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "error", err)
		}
		if err == nil && hit {
			cacheHooks.OnCacheHit(ctx, format)
			artifacts[format] = data
			info.Hits = append(info.Hits, format)
			continue
		}
		cacheHooks.OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}
	info.RenderHit = cacheable && len(missing) == 0 && len(info.Hits) > 0

	if len(missing) == 0 {
		return artifacts, info, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, s, renderOpts, meta)
	if err != nil {
		return nil, info, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		if !cacheable || format == FormatJSON {
			continue
		}
		key := r.Keyer.ArtifactKey(sheetHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}

	return artifacts, info, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
