package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mondrian/pkg/mondrian"
	"github.com/matzehuels/mondrian/pkg/pipeline"
	"github.com/matzehuels/mondrian/pkg/render/tree"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	canvasFlags
	format      string
	output      string
	detailed    bool
	visibleOnly bool
}

// treeCommand renders only the split tree of a generation. The canvas is
// still painted so terminal nodes can be coloured, but no image is written.
func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{format: tree.FormatSVG}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render the split tree of a generation",
		Long: `Render the recursive split tree as a Graphviz diagram.

Each node is a region; edges carry the split orientation and boundary line.
Subtrees that a later split painted over are drawn dashed, or dropped with
--visible-only. Use the same --seed as generate to explain a given image.`,
		Example: `  mondrian tree --seed 42
  mondrian tree --seed 42 -f dot -o - | dot -Tpdf > tree.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			popts, err := opts.options(cmd, cfg)
			if err != nil {
				return err
			}
			if err := pipeline.ValidateTreeFormat(opts.format); err != nil {
				return err
			}
			return c.runTree(cmd.Context(), popts, &opts)
		},
	}

	opts.canvasFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "diagram format: svg (default), dot, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file, or "-" for stdout`)
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with region bounds and depth")
	cmd.Flags().BoolVar(&opts.visibleOnly, "visible-only", false, "omit painted-over subtrees")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, popts pipeline.Options, opts *treeOpts) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	seed := popts.Seed
	if seed == 0 {
		seed = mondrian.RandomSeed()
	}

	gen, err := runner.Generate(ctx, popts, seed)
	if err != nil {
		return err
	}
	data, err := tree.Render(ctx, gen.Tree, opts.format, tree.Options{
		Detailed:    opts.detailed,
		VisibleOnly: opts.visibleOnly,
		Canvas:      gen.Canvas,
	})
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := c.Out.Write(data)
		return err
	}

	path := opts.output
	if path == "" {
		path = fmt.Sprintf("%s.tree.%s", trimKnownExt(popts.GenerateMode().DefaultOutput()), opts.format)
	}
	if err := writeFile(path, data); err != nil {
		return err
	}

	printSuccess(c.Out, "Rendered split tree (%d nodes, %d visible regions)", gen.Tree.Count(), len(gen.Tree.Leaves()))
	printStats(c.Out, seed, len(gen.Tree.Leaves()), gen.Tree.Depth(), false)
	printFile(c.Out, path)
	return nil
}
