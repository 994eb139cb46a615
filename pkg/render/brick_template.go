package render

import (
	"fmt"

	"github.com/soniarosenberger/brickring/pkg/ring"
)

// BrickSVG renders the single-brick cut template: the trapezoid cross-section
// laid flat with its outer face on top, four dimension call-outs (outer face,
// inner face, thickness, taper) and the two miter-angle arcs off dashed
// vertical references.
func BrickSVG(in ring.Inputs, g ring.Geometry, opts ...Option) []byte {
	o := newOptions(opts)

	L := g.OuterFaceLength
	t := in.BrickThickness
	taper := g.TaperPerSide

	// Trapezoid corners, outer face horizontal on top.
	outerLeft := [2]float64{0, t}
	outerRight := [2]float64{L, t}
	innerRight := [2]float64{taper + g.InnerFaceLength, 0}
	innerLeft := [2]float64{taper, 0}

	minX := -0.20 * L
	maxX := L + 0.38*L
	maxY := t + 0.34*L
	minY := -0.36 * L

	c := newCanvas(minX, minY, maxX, maxY, o.widthPx, o.fontSize)
	c.open("Single Brick — Cut Template")

	c.polygon([][2]float64{outerLeft, outerRight, innerRight, innerLeft}, colorLine, 2)

	c.dim(0, t, L, t, 0, 0.10*L,
		fmt.Sprintf("%.3f %s  (Outer face)", L, o.unit), 0, 0.035*L)
	c.dim(innerLeft[0], 0, innerRight[0], 0, 0, -0.10*L,
		fmt.Sprintf("%.3f %s  (Inner face)", g.InnerFaceLength, o.unit), 0, -0.055*L)
	c.dim(L, 0, L, t, 0.14*L, 0,
		fmt.Sprintf("%.3f %s  (Thickness)", t, o.unit), 0.16*L, 0)
	c.dim(0, 0, taper, 0, 0, -0.24*L,
		fmt.Sprintf("%.3f %s  (Taper each side)", taper, o.unit), 0, -0.055*L)

	miterCallout(c, outerLeft, g.MiterAngleDeg, L, true)
	miterCallout(c, outerRight, g.MiterAngleDeg, L, false)

	summary := []string{
		fmt.Sprintf("Miter per end = %.2f° (off-square)", g.MiterAngleDeg),
		fmt.Sprintf("Central angle = %.2f°", g.CentralAngleDeg),
		fmt.Sprintf("Saw kerf = %.3f %s", in.SawKerf, o.unit),
	}
	for i, line := range summary {
		c.text(L/2, t+0.27*L-float64(i)*0.05*L, "middle", line, o.fontSize, colorLine)
	}

	return c.close()
}

// miterCallout draws the dashed square-reference line dropping from a top
// corner plus the off-square angle arc and its label. The left cut leans
// right of vertical, the right cut leans left, so the arc opens toward the
// brick on both ends.
func miterCallout(c *canvas, corner [2]float64, miterDeg, faceLen float64, left bool) {
	refLen := 0.16 * faceLen
	arcR := 0.10 * faceLen

	c.line(corner[0], corner[1], corner[0], corner[1]-refLen, colorDim, 1, true)

	const down = 270.0 // vertical reference, pointing at the inner face
	if left {
		c.angleArc(corner[0], corner[1], arcR, down, down+miterDeg,
			fmt.Sprintf("%.2f°", miterDeg), down+miterDeg/2)
	} else {
		c.angleArc(corner[0], corner[1], arcR, down-miterDeg, down,
			fmt.Sprintf("%.2f°", miterDeg), down-miterDeg/2)
	}
}
