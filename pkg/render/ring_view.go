package render

import (
	"fmt"
	"math"

	"github.com/soniarosenberger/brickring/pkg/ring"
)

// RingSVG renders the top view of the full ring: concentric circles for the
// barrel, insulation and brick boundaries, N wedge polygons, and the three
// stacked diameter dimensions underneath.
func RingSVG(in ring.Inputs, g ring.Geometry, opts ...Option) []byte {
	o := newOptions(opts)
	n := in.BricksPerRing

	rOut := g.BarrelOuterRadius
	margin := 0.10 * rOut
	dimBase := 0.14 * rOut
	stackGap := 0.17 * rOut
	labelDrop := 0.06 * rOut

	minX := -(rOut + margin)
	maxX := rOut + margin
	maxY := rOut + margin + 0.16*rOut // headroom for the title
	minY := -(rOut + dimBase + 2*stackGap + labelDrop + margin)

	c := newCanvas(minX, minY, maxX, maxY, o.widthPx, o.fontSize)
	c.open(fmt.Sprintf("Template for %d-Sided Brick Lining — Top View", n))

	if in.BarrelWallThickness > 0 {
		c.circle(0, 0, g.BarrelOuterRadius, colorLine, 1.5)
	}
	c.circle(0, 0, g.BarrelInnerRadius, colorLine, 1.5)
	if in.InsulationThickness > 0 {
		c.annulus(0, 0, g.InsulationInnerRadius, g.BarrelInnerRadius, colorInsulation)
		c.circle(0, 0, g.InsulationInnerRadius, colorDim, 1)
	}
	c.circle(0, 0, g.BrickOuterRadius, colorDim, 1)
	c.circle(0, 0, g.BrickInnerRadius, colorDim, 1)

	// True clearance circle: inscribed in the inner N-gon.
	c.circle(0, 0, ring.Apothem(g.BrickInnerRadius, n), colorDim, 0.75)

	wedges(c, g.BrickInnerRadius, g.BrickOuterRadius, n)

	dims := []struct {
		half  float64
		label string
	}{
		{g.BarrelInnerRadius, fmt.Sprintf("Ø %.3f %s  (Barrel inside diameter)", in.BarrelInsideDiameter, o.unit)},
		{g.ClearAcrossFlats / 2, fmt.Sprintf("Ø %.3f %s  (Inner diameter across flats)", g.ClearAcrossFlats, o.unit)},
		{g.ClearAcrossCorners / 2, fmt.Sprintf("Ø %.3f %s  (Inner diameter across corners)", g.ClearAcrossCorners, o.unit)},
	}
	for i, d := range dims {
		y := -(rOut + dimBase + float64(i)*stackGap)
		c.dim(-d.half, y, d.half, y, 0, 0, d.label, 0, -labelDrop)
	}

	if g.Interference {
		c.text(0, rOut+0.04*rOut, "middle", "INTERFERENCE: brick ring intrudes into insulation", o.fontSize, colorWarning)
	}

	return c.close()
}

// wedges draws the N brick cross-sections as four-point polygons between the
// inner and outer brick radii.
func wedges(c *canvas, rInner, rOuter float64, n int) {
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		t0 := float64(i) * step
		t1 := float64(i+1) * step
		c.polygon([][2]float64{
			{rInner * math.Cos(t0), rInner * math.Sin(t0)},
			{rInner * math.Cos(t1), rInner * math.Sin(t1)},
			{rOuter * math.Cos(t1), rOuter * math.Sin(t1)},
			{rOuter * math.Cos(t0), rOuter * math.Sin(t0)},
		}, colorLine, 1)
	}
}
