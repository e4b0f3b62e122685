package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mondrian/pkg/cache"
	"github.com/matzehuels/mondrian/pkg/canvas"
	"github.com/matzehuels/mondrian/pkg/mondrian"
	"github.com/matzehuels/mondrian/pkg/observability"
	"github.com/matzehuels/mondrian/pkg/render/sink"
	"github.com/matzehuels/mondrian/pkg/render/tree"
)

// idNamespace scopes run IDs derived with uuid.NewSHA1.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/mondrian"))

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
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

// Generation is the output of the generate stage.
type Generation struct {
	Canvas *canvas.Canvas
	Tree   *mondrian.Tree
	Stats  *mondrian.Stats
}

// Execute runs generate → render with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = mondrian.RandomSeed()
	}

	result := &Result{
		ID:        RunID(opts, seed),
		Mode:      opts.GenerateMode(),
		Seed:      seed,
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{Cacheable: opts.Seed != 0},
	}

	if result.CacheInfo.Cacheable && !opts.Refresh {
		if artifacts, ok := r.cached(ctx, opts, seed); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			r.Logger.Debug("served from cache", "id", result.ID, "formats", opts.Formats)
			return result, nil
		}
	}

	genStart := time.Now()
	gen, err := r.Generate(ctx, opts, seed)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Canvas = gen.Canvas
	result.Tree = gen.Tree
	result.Stats = Stats{
		Regions:      len(gen.Tree.Leaves()),
		Splits:       gen.Stats.Splits,
		Fills:        gen.Stats.Fills,
		Depth:        gen.Stats.MaxDepth,
		GenerateTime: time.Since(genStart),
	}

	r.Logger.Info("generated canvas",
		"mode", opts.Mode,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"seed", seed,
		"regions", result.Stats.Regions,
		"duration", result.Stats.GenerateTime)

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, gen, opts, result.ID)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	if result.CacheInfo.Cacheable {
		r.store(ctx, opts, seed, artifacts)
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate paints a fresh canvas for opts with the given seed.
func (r *Runner) Generate(ctx context.Context, opts Options, seed uint64) (*Generation, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Mode, opts.Width, opts.Height, seed)
	start := time.Now()

	c := canvas.New(opts.Width, opts.Height)
	rec := mondrian.NewRecorder()
	stats, err := mondrian.Generate(c, mondrian.Options{
		Mode:     opts.GenerateMode(),
		Seed:     seed,
		Palette:  opts.EffectivePalette(),
		Observer: rec,
	})

	regions := 0
	if err == nil {
		regions = len(rec.Tree().Leaves())
	}
	hooks.OnGenerateComplete(ctx, opts.Mode, regions, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return &Generation{Canvas: c, Tree: rec.Tree(), Stats: stats}, nil
}

// Render encodes a generation in every requested format. The split-tree
// diagram, when requested, is stored under TreeArtifactPrefix+format.
func (r *Runner) Render(ctx context.Context, gen *Generation, opts Options, id string) (artifacts map[string][]byte, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	artifacts = make(map[string][]byte, len(opts.Formats)+1)
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		if format == FormatJSON {
			data, err = sink.RenderJSON(opts.Width, opts.Height, gen.Tree,
				sink.WithJSONID(id),
				sink.WithJSONMode(opts.Mode),
				sink.WithJSONSeed(gen.Stats.Seed),
				sink.WithJSONPalette(opts.EffectivePalette()),
				sink.WithJSONStats(gen.Stats),
			)
		} else {
			data, err = sink.RenderImage(gen.Canvas.Image(), format,
				sink.WithScale(opts.Scale),
				sink.WithJPEGQuality(opts.JPEGQuality),
			)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		r.Logger.Debug("encoded artifact", "format", format, "bytes", len(data))
	}

	if opts.Tree != "" {
		data, err := tree.Render(ctx, gen.Tree, opts.Tree, tree.Options{
			Detailed: opts.TreeDetailed,
			Canvas:   gen.Canvas,
		})
		if err != nil {
			return nil, fmt.Errorf("render tree: %w", err)
		}
		artifacts[TreeArtifactPrefix+opts.Tree] = data
	}

	return artifacts, nil
}

// cached returns every requested artifact from the cache, or false if any is missing.
func (r *Runner) cached(ctx context.Context, opts Options, seed uint64) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats)+1)
	for _, format := range opts.Formats {
		data, ok := r.lookup(ctx, "artifact", r.Keyer.ArtifactKey(opts.ArtifactKeyOpts(format, seed)))
		if !ok {
			return nil, false
		}
		artifacts[format] = data
	}
	if opts.Tree != "" {
		data, ok := r.lookup(ctx, "tree", r.Keyer.TreeKey(opts.TreeKeyOpts(seed)))
		if !ok {
			return nil, false
		}
		artifacts[TreeArtifactPrefix+opts.Tree] = data
	}
	return artifacts, true
}

func (r *Runner) lookup(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, opts Options, seed uint64, artifacts map[string][]byte) {
	set := func(keyType, key string, data []byte) {
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.Logger.Warn("cache write failed", "key", key, "err", err)
			return
		}
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
	for _, format := range opts.Formats {
		set("artifact", r.Keyer.ArtifactKey(opts.ArtifactKeyOpts(format, seed)), artifacts[format])
	}
	if opts.Tree != "" {
		set("tree", r.Keyer.TreeKey(opts.TreeKeyOpts(seed)), artifacts[TreeArtifactPrefix+opts.Tree])
	}
}

// RunID derives a stable identifier from the inputs that determine an image.
func RunID(opts Options, seed uint64) string {
	key, _ := json.Marshal(struct {
		Mode    string   `json:"mode"`
		Width   int      `json:"width"`
		Height  int      `json:"height"`
		Seed    uint64   `json:"seed"`
		Palette []string `json:"palette,omitempty"`
	}{opts.Mode, opts.Width, opts.Height, seed, opts.Palette})
	return uuid.NewSHA1(idNamespace, key).String()
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
