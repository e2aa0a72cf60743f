package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowbox/pkg/cache"
	flowio "github.com/matzehuels/flowbox/pkg/io"
	"github.com/matzehuels/flowbox/pkg/layout"
	"github.com/matzehuels/flowbox/pkg/observability"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

// Runner executes the pipeline with artifact caching.
//
// A Runner holds no per-run state, so one Runner may serve concurrent
// Execute calls as long as its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
	// TTL is the lifetime of cached artifacts. Zero means no expiry.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching and a nil logger
// uses the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Execute runs load → layout → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	w, hash, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Workflow = w
	result.DocumentHash = hash
	result.Stats.StepCount = w.StepCount()
	result.Stats.EdgeCount = w.EdgeCount()

	// Cached artifacts skip layout and rendering.
	if !opts.Refresh {
		if artifacts, ok := r.cached(ctx, hash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo = CacheInfo{RenderHit: true, Hits: opts.Formats}
			logger.Debug("served from cache", "formats", opts.Formats, "hash", hash[:12])
			return result, nil
		}
	}

	// Stage 2: Layout
	result.Stats.LayoutTime = r.Layout(ctx, w)
	width, height := w.CanvasSize()
	logger.Debug("computed layout",
		"steps", w.StepCount(),
		"width", width,
		"height", height,
		"duration", result.Stats.LayoutTime)
	if err := opts.checkCanvas(width, height); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := RenderAll(w, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	for format, data := range artifacts {
		key := cache.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}

	logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load decodes opts.Input and returns the workflow with the content hash of
// its canonical document.
func (r *Runner) Load(ctx context.Context, opts Options) (*workflow.Workflow, string, error) {
	format := string(opts.InputFormat)
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, format)

	w, canonical, err := flowio.Decode(opts.Input, opts.InputFormat)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, format, 0, 0, time.Since(start), err)
		return nil, "", err
	}
	observability.Pipeline().OnLoadComplete(ctx, format, w.StepCount(), w.EdgeCount(), time.Since(start), nil)
	return w, cache.Hash(canonical), nil
}

// Layout lays w out and returns how long it took.
func (r *Runner) Layout(ctx context.Context, w *workflow.Workflow) time.Duration {
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, w.StepCount())
	layout.Apply(w)
	elapsed := time.Since(start)
	width, height := w.CanvasSize()
	observability.Pipeline().OnLayoutComplete(ctx, width, height, elapsed)
	return elapsed
}

// cached returns every requested artifact if all of them are cached.
func (r *Runner) cached(ctx context.Context, hash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := cache.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
			return nil, false
		}
		if !hit {
			observability.Cache().OnCacheMiss(ctx, format)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, format)
		artifacts[format] = data
	}
	return artifacts, true
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
