package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/fractal/internal/app"
	"go.trai.ch/fractal/internal/core/domain"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compute the grid described by the parameter file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")
			noSnapshot, _ := cmd.Flags().GetBool("no-snapshot")
			withUI, _ := cmd.Flags().GetBool("tui")

			override, err := paramOverrides(cmd.Flags())
			if err != nil {
				return err
			}

			res, err := c.app.Render(cmd.Context(), app.RenderOptions{
				ConfigPath: configPath,
				Output:     output,
				NoSnapshot: noSnapshot,
				Override:   override,
				TUI:        withUI,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d %s (%s)\n",
				res.Params.Kind, res.Grid.Size, res.Grid.Size, res.Status, res.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the grid as an image (.png, .bmp or .tiff)")
	cmd.Flags().BoolP("no-snapshot", "n", false, "Neither read nor write stored snapshots")
	cmd.Flags().BoolP("tui", "t", false, "Follow the render in an interactive terminal view")
	cmd.Flags().StringP("kind", "k", "", "Fractal kind, overriding the parameter file")
	cmd.Flags().Int("size", 0, "Axis size in pixels")
	cmd.Flags().Float64("zoom", 0, "Magnification")
	cmd.Flags().Int("iterations", 0, "Iteration cap")
	cmd.Flags().Int("offset-x", 0, "Horizontal offset in pixels")
	cmd.Flags().Int("offset-y", 0, "Vertical offset in pixels")
	cmd.Flags().Float64("hue-shift", 0, "Hue rotation applied to the output")
	cmd.Flags().String("iteration", "", "Iteration formula of the custom kind")
	return cmd
}

// paramOverrides returns a function applying the flags the user set explicitly.
func paramOverrides(flags *pflag.FlagSet) (func(*domain.Params), error) {
	var kind domain.Kind
	if flags.Changed("kind") {
		name, _ := flags.GetString("kind")
		k, err := domain.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	size, _ := flags.GetInt("size")
	zoom, _ := flags.GetFloat64("zoom")
	iterations, _ := flags.GetInt("iterations")
	offsetX, _ := flags.GetInt("offset-x")
	offsetY, _ := flags.GetInt("offset-y")
	hueShift, _ := flags.GetFloat64("hue-shift")
	iteration, _ := flags.GetString("iteration")

	return func(p *domain.Params) {
		if flags.Changed("kind") {
			p.Kind = kind
		}
		if flags.Changed("size") {
			p.AxisSize = size
		}
		if flags.Changed("zoom") {
			p.Magnification = zoom
		}
		if flags.Changed("iterations") {
			p.MaxIterations = iterations
		}
		if flags.Changed("offset-x") {
			p.OffsetX = offsetX
		}
		if flags.Changed("offset-y") {
			p.OffsetY = offsetY
		}
		if flags.Changed("hue-shift") {
			p.HueShift = hueShift
		}
		if flags.Changed("iteration") {
			p.CustomIteration = iteration
		}
	}, nil
}
