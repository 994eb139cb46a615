// Package report prints the textual two-section listing of a ring
// computation: the raw inputs followed by every derived measurement.
//
// Lengths are formatted to 3 decimal places with a trailing unit, angles to 3
// decimal places with a degree symbol, and diameters carry the Ø prefix. The
// writer produces plain text; terminal styling is applied by the CLI layer.
package report

import (
	"fmt"
	"io"

	"github.com/soniarosenberger/brickring/pkg/ring"
)

// Option configures the report writer.
type Option func(*writer)

// WithUnit sets the length unit suffix (default "in").
func WithUnit(unit string) Option {
	return func(w *writer) { w.unit = unit }
}

type writer struct {
	out  io.Writer
	unit string
	err  error
}

// Write prints the full inputs/outputs report for one solved ring.
func Write(out io.Writer, in ring.Inputs, g ring.Geometry, opts ...Option) error {
	w := &writer{out: out, unit: "in"}
	for _, opt := range opts {
		opt(w)
	}

	w.section("INPUTS")
	w.row("Mode", string(g.Mode))
	w.intRow("Bricks per ring (N)", in.BricksPerRing)
	w.diameterRow("Barrel inside diameter", in.BarrelInsideDiameter)
	w.lengthRow("Barrel wall thickness", in.BarrelWallThickness)
	w.lengthRow("Backup insulation thickness", in.InsulationThickness)
	w.lengthRow("Brick radial thickness", in.BrickThickness)
	w.lengthRow("Outer face length (given)", in.FaceLength)
	w.lengthRow("Saw kerf", in.SawKerf)

	w.section("OUTPUTS")
	w.angleRow("Central angle", g.CentralAngleDeg)
	w.angleRow("Miter angle per end (off-square)", g.MiterAngleDeg)
	w.lengthRow("Outer face length", g.OuterFaceLength)
	w.lengthRow("Inner face length", g.InnerFaceLength)
	w.lengthRow("Taper per side", g.TaperPerSide)
	w.diameterRow("Brick ring outer diameter", 2*g.BrickOuterRadius)
	w.diameterRow("Inner diameter across flats", g.ClearAcrossFlats)
	w.diameterRow("Inner diameter across corners", g.ClearAcrossCorners)
	w.lengthRow("Gap to insulation at face centers", g.GapAtFaceCenters)
	w.lengthRow("Gap to insulation at vertices", g.GapAtVertices)

	if g.SizeAdjusted {
		w.note(fmt.Sprintf("NOTE: brick size adjusted to fit; outer face reduced to %.3f %s", g.OuterFaceLength, w.unit))
	}
	if g.Interference {
		w.note("WARNING: INTERFERENCE - the brick ring intrudes into the backup insulation")
	}

	return w.err
}

const rowFormat = "%-36s %s\n"

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *writer) section(title string) {
	w.printf("\n=== %s ===\n", title)
}

func (w *writer) row(label, value string) {
	w.printf(rowFormat, label+":", value)
}

func (w *writer) intRow(label string, v int) {
	w.row(label, fmt.Sprintf("%d", v))
}

func (w *writer) lengthRow(label string, v float64) {
	w.row(label, fmt.Sprintf("%.3f %s", v, w.unit))
}

func (w *writer) diameterRow(label string, v float64) {
	w.row(label, fmt.Sprintf("Ø %.3f %s", v, w.unit))
}

func (w *writer) angleRow(label string, v float64) {
	w.row(label, fmt.Sprintf("%.3f°", v))
}

func (w *writer) note(text string) {
	w.printf("\n%s\n", text)
}
