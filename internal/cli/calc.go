package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soniarosenberger/brickring/pkg/config"
	"github.com/soniarosenberger/brickring/pkg/report"
	"github.com/soniarosenberger/brickring/pkg/ring"
)

// calcOpts holds the command-line flags for the calc command.
type calcOpts struct {
	configPath string
	mode       string
	unit       string
	output     string
	formatsStr string

	inputs ring.Inputs
}

// calcCommand creates the calc command: one ring computation from flags or a
// TOML job file, report on stdout, diagrams on request.
func (c *CLI) calcCommand() *cobra.Command {
	opts := calcOpts{
		mode: string(ring.ModeShrinkToFit),
		unit: "in",
	}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute ring geometry and the single-brick cut dimensions",
		Long: `Compute the full ring geometry for one input set and print the report.

Inputs come from dimension flags, from a TOML job file (--config), or both;
flags override file values. With --output, the ring top view and the
single-brick cut template are written next to the report.

Modes:
  fixed   outer face length is used exactly as given; no fitting
  shrink  face length is a target; the ring shrinks to fit the insulation
  clamp   face length is a hard maximum; too-tight rings fail`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, unit, mode, err := resolveJob(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runCalc(in, mode, unit, opts.output, opts.formatsStr)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML job file with barrel and lining sections")
	addInputFlags(cmd, &opts.inputs)
	cmd.Flags().StringVar(&opts.mode, "mode", opts.mode, "solve mode: fixed, shrink (default), clamp")
	cmd.Flags().StringVar(&opts.unit, "unit", opts.unit, "length unit for report and diagrams")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "base path for diagrams (writes <base>_ring and <base>_brick)")
	cmd.Flags().StringVarP(&opts.formatsStr, "format", "f", "", "diagram format(s): svg (default), png, pdf (comma-separated)")

	return cmd
}

// addInputFlags registers the seven dimension flags in the canonical entry
// order, shared by calc and the prompt seed.
func addInputFlags(cmd *cobra.Command, in *ring.Inputs) {
	cmd.Flags().Float64Var(&in.BarrelInsideDiameter, "diameter", 0, "barrel inside diameter")
	cmd.Flags().Float64Var(&in.BarrelWallThickness, "wall", 0, "barrel wall thickness (diagram/report only)")
	cmd.Flags().Float64Var(&in.InsulationThickness, "insulation", 0, "backup insulation thickness")
	cmd.Flags().Float64Var(&in.BrickThickness, "brick", 0, "brick radial thickness")
	cmd.Flags().IntVarP(&in.BricksPerRing, "bricks", "n", 0, "bricks per ring")
	cmd.Flags().Float64Var(&in.FaceLength, "face", 0, "outer face length (exact, target or maximum per mode)")
	cmd.Flags().Float64Var(&in.SawKerf, "kerf", 0, "saw blade width (informational)")
}

// resolveJob merges the job file (if any) with the dimension flags.
// A flag that was explicitly set wins over the file value.
func resolveJob(cmd *cobra.Command, opts *calcOpts) (ring.Inputs, string, ring.Mode, error) {
	in := opts.inputs
	unit := opts.unit
	mode := ring.Mode(opts.mode)

	if opts.configPath != "" {
		job, err := config.Load(opts.configPath)
		if err != nil {
			return ring.Inputs{}, "", "", err
		}
		fromFile := job.Inputs()

		flags := cmd.Flags()
		if !flags.Changed("diameter") {
			in.BarrelInsideDiameter = fromFile.BarrelInsideDiameter
		}
		if !flags.Changed("wall") {
			in.BarrelWallThickness = fromFile.BarrelWallThickness
		}
		if !flags.Changed("insulation") {
			in.InsulationThickness = fromFile.InsulationThickness
		}
		if !flags.Changed("brick") {
			in.BrickThickness = fromFile.BrickThickness
		}
		if !flags.Changed("bricks") {
			in.BricksPerRing = fromFile.BricksPerRing
		}
		if !flags.Changed("face") {
			in.FaceLength = fromFile.FaceLength
		}
		if !flags.Changed("kerf") {
			in.SawKerf = fromFile.SawKerf
		}
		if !flags.Changed("mode") {
			mode = job.SolveMode()
		}
		if !flags.Changed("unit") {
			unit = job.LengthUnit()
		}
	}

	return in, unit, mode, nil
}

// runCalc solves the ring, prints the report and writes any requested
// diagrams. Nothing is written when the solve fails.
func (c *CLI) runCalc(in ring.Inputs, mode ring.Mode, unit, output, formatsStr string) error {
	g, err := ring.Solve(in, mode)
	if err != nil {
		return err
	}

	if err := report.Write(c.Out, in, g, report.WithUnit(unit)); err != nil {
		return err
	}
	if g.SizeAdjusted {
		c.Logger.Warnf("Brick size adjusted to fit: outer face reduced to %.3f %s", g.OuterFaceLength, unit)
	}
	if g.Interference {
		fmt.Fprintln(c.Out, styleWarning.Render("Check the fit: the brick ring interferes with the backup insulation."))
	}

	if output == "" {
		return nil
	}
	return c.writeDiagrams(in, g, unit, output, parseFormats(formatsStr))
}
