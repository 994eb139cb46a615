package render

import (
	"strings"
	"testing"

	"github.com/soniarosenberger/brickring/pkg/ring"
)

func exampleGeometry(t *testing.T, insulation float64, mode ring.Mode) (ring.Inputs, ring.Geometry) {
	t.Helper()
	in := ring.Inputs{
		BarrelInsideDiameter: 24,
		BarrelWallThickness:  0.25,
		InsulationThickness:  insulation,
		BrickThickness:       4.5,
		BricksPerRing:        8,
		FaceLength:           9.0,
		SawKerf:              0.125,
	}
	g, err := ring.Solve(in, mode)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return in, g
}

func TestRingSVG(t *testing.T) {
	in, g := exampleGeometry(t, 1.0, ring.ModeShrinkToFit)
	svg := string(RingSVG(in, g))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Fatalf("not an SVG document: %.60s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}

	if got := strings.Count(svg, "<polygon"); got != 8 {
		t.Errorf("wedge polygons = %d, want 8", got)
	}
	// Barrel outer + inner, insulation annulus + boundary, brick outer +
	// inner, inner flats.
	if got := strings.Count(svg, "<circle"); got != 7 {
		t.Errorf("circles = %d, want 7", got)
	}

	for _, want := range []string{
		"8-Sided Brick Lining",
		"Barrel inside diameter",
		"Inner diameter across flats",
		"Inner diameter across corners",
		"Ø 24.000 in",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("ring SVG missing %q", want)
		}
	}

	if strings.Contains(svg, "INTERFERENCE") {
		t.Error("interference banner shown for a clean fit")
	}
}

func TestRingSVGNoInsulationNoWall(t *testing.T) {
	in := ring.Inputs{
		BarrelInsideDiameter: 24,
		BrickThickness:       4.5,
		BricksPerRing:        8,
		FaceLength:           9.0,
	}
	g, err := ring.Solve(in, ring.ModeFixedFace)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	svg := string(RingSVG(in, g))

	// Barrel inner, brick outer + inner, inner flats. No wall, no annulus.
	if got := strings.Count(svg, "<circle"); got != 4 {
		t.Errorf("circles = %d, want 4", got)
	}
}

func TestRingSVGInterferenceBanner(t *testing.T) {
	in, g := exampleGeometry(t, 1.0, ring.ModeFixedFace)
	if !g.Interference {
		t.Fatal("expected interfering geometry")
	}
	if !strings.Contains(string(RingSVG(in, g)), "INTERFERENCE") {
		t.Error("ring SVG missing interference banner")
	}
}

func TestBrickSVG(t *testing.T) {
	in, g := exampleGeometry(t, 0, ring.ModeFixedFace)
	svg := string(BrickSVG(in, g))

	for _, want := range []string{
		"Cut Template",
		"9.000 in  (Outer face)",
		"5.272 in  (Inner face)",
		"4.500 in  (Thickness)",
		"1.864 in  (Taper each side)",
		"Miter per end = 22.50° (off-square)",
		"Central angle = 45.00°",
		"Saw kerf = 0.125 in",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("brick SVG missing %q", want)
		}
	}

	// One trapezoid, two miter arcs off two dashed references.
	if got := strings.Count(svg, "<polygon"); got != 1 {
		t.Errorf("polygons = %d, want 1", got)
	}
	if got := strings.Count(svg, " A "); got != 2 {
		t.Errorf("miter arcs = %d, want 2", got)
	}
	if got := strings.Count(svg, "stroke-dasharray"); got != 2 {
		t.Errorf("dashed references = %d, want 2", got)
	}
	if got := strings.Count(svg, "22.50°"); got != 3 {
		t.Errorf("miter labels = %d, want 3 (two arcs + summary)", got)
	}
}

func TestBrickSVGCustomOptions(t *testing.T) {
	in, g := exampleGeometry(t, 0, ring.ModeFixedFace)
	svg := string(BrickSVG(in, g, WithUnit("mm"), WithWidth(400)))

	if !strings.Contains(svg, `width="400"`) {
		t.Error("custom width not applied")
	}
	if !strings.Contains(svg, "9.000 mm") {
		t.Error("custom unit not applied")
	}
}
