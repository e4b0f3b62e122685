package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mondrian/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Run without a subcommand on a terminal, mondrian asks for a mode and a
// canvas size and paints it, like the original console client. Otherwise it
// prints help.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "Mondrian paints grid art by recursive subdivision",
		Long: `Mondrian generates abstract grid paintings in the style of Piet Mondrian.

The canvas is split recursively into rectangles with one-pixel black borders,
then each terminal cell is filled from a palette. Seeds make every image
reproducible; the split tree behind an image can be rendered as a diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				c.ConfigPath = configPath
			}
			if verbose {
				c.SetLogLevel(LogDebug)
				installLogHooks(c.Logger)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(c.In) || !isTerminal(c.Out) {
				return cmd.Help()
			}
			return c.runInteractive(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mondrian/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// runInteractive prompts for mode and size, then paints with the configured
// formats to the mode's default file name.
func (c *CLI) runInteractive(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	model := NewPromptModel(cfg.Mode(), cfg.Generate.Width, cfg.Generate.Height)
	final, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(c.In),
		tea.WithOutput(c.Out),
	).Run()
	if err != nil {
		return err
	}

	answers, ok := final.(PromptModel)
	if !ok || !answers.Done() {
		printInfo(os.Stderr, "Cancelled")
		return nil
	}

	base, err := configOptions(cfg, answers.Mode)
	if err != nil {
		return err
	}
	opts := answers.options(base)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	return c.runGenerate(ctx, &generateRequest{
		opts:    opts,
		outDir:  cfg.OutputDir(),
		noCache: cfg.Generate.NoCache,
	})
}
