package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mondrian/pkg/mondrian"
)

// paletteCommand prints the colours each mode paints with, including any
// override from the config file.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "palette [mode]",
		Short:     "Show the colour palettes",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(mondrian.ModeBasic), string(mondrian.ModeComplex)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			modes := mondrian.Modes
			if len(args) == 1 {
				m, err := mondrian.ParseMode(args[0])
				if err != nil {
					return err
				}
				modes = []mondrian.Mode{m}
			}

			for _, m := range modes {
				p, err := cfg.Palette(m)
				if err != nil {
					return err
				}
				name := string(m)
				if p == nil {
					p = m.Palette()
				} else {
					name += " (config)"
				}
				printPalette(c.Out, name, p)
			}
			printDetail(c.Out, "borders and wave gaps are always %s", swatch("#000000"))
			return nil
		},
	}
}
