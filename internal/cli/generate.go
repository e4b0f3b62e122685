package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mondrian/pkg/config"
	apperrors "github.com/matzehuels/mondrian/pkg/errors"
	pkgio "github.com/matzehuels/mondrian/pkg/io"
	"github.com/matzehuels/mondrian/pkg/mondrian"
	"github.com/matzehuels/mondrian/pkg/pipeline"
	"github.com/matzehuels/mondrian/pkg/render/sink"
	"github.com/matzehuels/mondrian/pkg/render/tree"
)

// canvasFlags are the flags shared by every command that paints a canvas.
type canvasFlags struct {
	mode    string
	width   int
	height  int
	seed    uint64
	palette string
	from    string
}

func (f *canvasFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", string(pipeline.DefaultMode), "generation mode: basic, complex")
	cmd.Flags().IntVarP(&f.width, "width", "W", pipeline.DefaultWidth, "canvas width in pixels")
	cmd.Flags().IntVarP(&f.height, "height", "H", pipeline.DefaultHeight, "canvas height in pixels")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 draws a fresh one)")
	cmd.Flags().StringVar(&f.palette, "palette", "", "custom palette as comma-separated #rrggbb colours")
	cmd.Flags().StringVar(&f.from, "from", "", "repaint from a JSON manifest (mode, size, seed, palette)")

	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(mondrian.ModeBasic), string(mondrian.ModeComplex)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// options resolves canvas settings. Flags the user set win over a --from
// manifest, which wins over the config file and then built-in defaults.
func (f *canvasFlags) options(cmd *cobra.Command, cfg *config.Config) (pipeline.Options, error) {
	changed := cmd.Flags().Changed

	var manifest *pkgio.Manifest
	if f.from != "" {
		var err error
		if manifest, err = pkgio.ImportJSON(f.from); err != nil {
			return pipeline.Options{}, err
		}
	}

	mode := cfg.Generate.Mode
	if manifest != nil && manifest.Mode != "" {
		mode = manifest.Mode
	}
	if changed("mode") {
		mode = f.mode
	}
	m, err := mondrian.ParseMode(mode)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts, err := configOptions(cfg, m)
	if err != nil {
		return pipeline.Options{}, err
	}
	if manifest != nil {
		opts.Width, opts.Height, opts.Seed = manifest.Width, manifest.Height, manifest.Seed
		if len(manifest.Palette) > 0 {
			opts.Palette = manifest.Palette
		}
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("seed") {
		opts.Seed = f.seed
	}
	if changed("palette") {
		opts.Palette = splitList(f.palette)
	}
	return opts, nil
}

// configOptions returns the configured settings for mode m.
func configOptions(cfg *config.Config, m mondrian.Mode) (pipeline.Options, error) {
	g := cfg.Generate
	opts := pipeline.Options{
		Mode:        string(m),
		Width:       g.Width,
		Height:      g.Height,
		Seed:        g.Seed,
		Formats:     slices.Clone(g.Formats),
		Scale:       g.Scale,
		JPEGQuality: g.JPEGQuality,
	}
	p, err := cfg.Palette(m)
	if err != nil {
		return pipeline.Options{}, err
	}
	if p != nil {
		opts.Palette = p.Hex()
	}
	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	canvasFlags
	formats      string
	output       string
	scale        int
	quality      int
	tree         string
	treeDetailed bool
	noCache      bool
	refresh      bool
}

// generateRequest is a fully resolved generate invocation.
type generateRequest struct {
	opts    pipeline.Options
	output  string // -o value; empty means the mode's default name
	outDir  string // config output_dir, used only without -o
	noCache bool
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Paint a Mondrian-style canvas",
		Long: `Paint a canvas by recursive rectangular subdivision.

Basic mode fills each cell with a flat primary colour inside a black border.
Complex mode uses a purple/blue palette with wave-banded cells.

Without --output the image is written to basic.png or extension.png,
matching the mode. With several formats, --output is used as the base name.`,
		Example: `  mondrian generate
  mondrian generate -m complex -W 1200 -H 800 --seed 42
  mondrian generate -f png,json --tree -o art/piece
  mondrian generate --from art/piece.json -f tiff --scale 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			req, err := opts.request(cmd, cfg)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), req)
		},
	}

	opts.canvasFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), jpeg, bmp, tiff, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().IntVar(&opts.scale, "scale", pipeline.DefaultScale, "integer upscaling factor for image formats")
	cmd.Flags().IntVar(&opts.quality, "quality", sink.DefaultJPEGQuality, "JPEG quality (1-100)")
	cmd.Flags().StringVar(&opts.tree, "tree", "", "also write the split tree: svg (default), dot, png")
	cmd.Flags().Lookup("tree").NoOptDefVal = tree.FormatSVG
	cmd.Flags().BoolVar(&opts.treeDetailed, "detailed", false, "label split-tree nodes with region bounds")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and repaint")

	return cmd
}

func (o *generateOpts) request(cmd *cobra.Command, cfg *config.Config) (*generateRequest, error) {
	opts, err := o.canvasFlags.options(cmd, cfg)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		opts.Formats = pipeline.ParseFormats(o.formats)
	}
	if changed("scale") {
		opts.Scale = o.scale
	}
	if changed("quality") {
		opts.JPEGQuality = o.quality
	}
	opts.Tree = o.tree
	opts.TreeDetailed = o.treeDetailed
	opts.Refresh = o.refresh

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	return &generateRequest{
		opts:    opts,
		output:  o.output,
		outDir:  cfg.OutputDir(),
		noCache: cfg.Generate.NoCache || o.noCache,
	}, nil
}

// artifactKeys lists the Result.Artifacts keys the request produces, in write order.
func (r *generateRequest) artifactKeys() []string {
	keys := slices.Clone(r.opts.Formats)
	if r.opts.Tree != "" {
		keys = append(keys, pipeline.TreeArtifactPrefix+r.opts.Tree)
	}
	return keys
}

// paths maps each artifact key to the file it is written to.
func (r *generateRequest) paths() (map[string]string, error) {
	keys := r.artifactKeys()
	out := make(map[string]string, len(keys))

	if len(keys) == 1 && r.output != "" && filepath.Ext(r.output) != "" {
		out[keys[0]] = r.output
		return out, apperrors.ValidateOutputPath(r.output)
	}

	var base string
	switch {
	case r.output != "":
		base = trimKnownExt(r.output)
	default:
		base = trimKnownExt(r.opts.GenerateMode().DefaultOutput())
		if r.outDir != "" {
			base = filepath.Join(r.outDir, base)
		}
	}

	for _, key := range keys {
		var path string
		if f, ok := strings.CutPrefix(key, pipeline.TreeArtifactPrefix); ok {
			path = base + ".tree." + f
		} else {
			path = base + sink.Extension(key)
		}
		if err := apperrors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		out[key] = path
	}
	return out, nil
}

// trimKnownExt drops an extension that names one of our output formats.
func trimKnownExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range append(slices.Clone(pipeline.ValidFormats), tree.Formats...) {
		if ext == sink.Extension(f) || ext == "."+f {
			return strings.TrimSuffix(path, filepath.Ext(path))
		}
	}
	return path
}

func (c *CLI) runGenerate(ctx context.Context, req *generateRequest) error {
	runner, err := c.newRunner(req.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	paths, err := req.paths()
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spin := newSpinnerWithContext(ctx, os.Stderr,
		fmt.Sprintf("Painting %dx%d %s canvas...", req.opts.Width, req.opts.Height, req.opts.Mode))
	spin.Start()
	result, err := runner.Execute(ctx, req.opts)
	spin.Stop()
	if err != nil {
		return err
	}

	for _, key := range req.artifactKeys() {
		if err := writeFile(paths[key], result.Artifacts[key]); err != nil {
			return err
		}
	}

	printSuccess(c.Out, "Painted %s canvas %dx%d", result.Mode, req.opts.Width, req.opts.Height)
	printStats(c.Out, result.Seed, result.Stats.Regions, result.Stats.Depth, result.CacheInfo.RenderHit)
	for _, key := range req.artifactKeys() {
		printFile(c.Out, paths[key])
	}
	if !result.CacheInfo.Cacheable {
		printDetail(c.Out, "reproduce with --seed %d", result.Seed)
	}

	prog.done(fmt.Sprintf("Wrote %d file(s) for %s", len(paths), result.ID))
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
