package ring

import (
	"math"

	"github.com/soniarosenberger/brickring/pkg/errors"
)

// Mode selects the engine's input contract for the outer face length.
type Mode string

// Solve modes. See the package documentation for the physical assumptions
// each one encodes.
const (
	ModeFixedFace   Mode = "fixed"
	ModeShrinkToFit Mode = "shrink"
	ModeClampReject Mode = "clamp"
)

// Modes lists all valid solve modes, in the order they are documented.
func Modes() []Mode {
	return []Mode{ModeFixedFace, ModeShrinkToFit, ModeClampReject}
}

// ValidateMode checks that m names a known solve mode.
func ValidateMode(m Mode) error {
	switch m {
	case ModeFixedFace, ModeShrinkToFit, ModeClampReject:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidMode, "unknown mode %q (valid: fixed, shrink, clamp)", string(m))
}

// Inputs is the raw input record for one ring computation.
// All lengths share one linear unit; the engine never converts units.
type Inputs struct {
	// BarrelInsideDiameter is the inside diameter of the cylindrical barrel.
	BarrelInsideDiameter float64 `json:"barrel_inside_diameter" toml:"barrel_inside_diameter"`

	// BarrelWallThickness is the barrel wall thickness. It only affects the
	// diagram and report, never the brick geometry.
	BarrelWallThickness float64 `json:"barrel_wall_thickness" toml:"barrel_wall_thickness"`

	// InsulationThickness is the radial backup insulation layer between the
	// barrel wall and the brick ring.
	InsulationThickness float64 `json:"backup_insulation_thickness" toml:"backup_insulation_thickness"`

	// BrickThickness is the radial thickness of one brick.
	BrickThickness float64 `json:"brick_radial_thickness" toml:"brick_radial_thickness"`

	// BricksPerRing is the number of wedge bricks forming the ring.
	BricksPerRing int `json:"bricks_per_ring" toml:"bricks_per_ring"`

	// FaceLength is the outer-face length of one brick. Its meaning depends
	// on the mode: exact in fixed, a target in shrink, a hard maximum in clamp.
	FaceLength float64 `json:"outer_face_length" toml:"outer_face_length"`

	// SawKerf is the blade width. Informational only.
	SawKerf float64 `json:"saw_kerf" toml:"saw_kerf"`
}

// Geometry is the complete derived-measurement record for one ring.
// Every field is a pure function of the inputs and the mode.
type Geometry struct {
	Mode Mode `json:"mode"`

	// Angles, in degrees.
	CentralAngleDeg float64 `json:"central_angle_deg"`
	MiterAngleDeg   float64 `json:"miter_angle_deg"`

	// Radii, outermost first.
	BarrelOuterRadius     float64 `json:"barrel_outer_radius"`
	BarrelInnerRadius     float64 `json:"barrel_inner_radius"`
	InsulationInnerRadius float64 `json:"insulation_inner_radius"`
	BrickOuterRadius      float64 `json:"brick_outer_radius"`
	BrickInnerRadius      float64 `json:"brick_inner_radius"`

	// Single-brick cut dimensions.
	OuterFaceLength float64 `json:"outer_face_length"`
	InnerFaceLength float64 `json:"inner_face_length"`
	TaperPerSide    float64 `json:"taper_per_side"`

	// Clear opening of the inner N-gon bore.
	ClearAcrossFlats   float64 `json:"clear_across_flats"`
	ClearAcrossCorners float64 `json:"clear_across_corners"`

	// Backup-insulation sanity checks. Negative values signal interference.
	GapAtFaceCenters float64 `json:"gap_at_face_centers"`
	GapAtVertices    float64 `json:"gap_at_vertices"`

	// SizeAdjusted is set when shrink-to-fit reduced the brick below the
	// requested face length.
	SizeAdjusted bool `json:"size_adjusted"`

	// Interference is set when any gap metric is negative, meaning the brick
	// ring intrudes into the insulation layer. A soft warning, not a failure.
	Interference bool `json:"interference"`
}

// ChordLength returns the chord subtended by one side of a regular n-gon
// circumscribed by a circle of radius r.
func ChordLength(r float64, n int) float64 {
	return 2 * r * math.Sin(math.Pi/float64(n))
}

// RadiusForChord is the inverse of ChordLength: the circumscribed radius of
// a regular n-gon with side length c.
func RadiusForChord(c float64, n int) float64 {
	return c / (2 * math.Sin(math.Pi/float64(n)))
}

// Apothem returns the center-to-side-midpoint distance of a regular n-gon
// with circumscribed radius r.
func Apothem(r float64, n int) float64 {
	return r * math.Cos(math.Pi/float64(n))
}

// Solve validates in and computes the full ring geometry under the given
// mode. It returns an INVALID_INPUT error for out-of-domain fields and an
// IMPOSSIBLE_GEOMETRY error when the combination has no physical solution.
func Solve(in Inputs, mode Mode) (Geometry, error) {
	if err := ValidateMode(mode); err != nil {
		return Geometry{}, err
	}
	if err := Validate(in); err != nil {
		return Geometry{}, err
	}

	n := in.BricksPerRing
	barrelInnerR := in.BarrelInsideDiameter / 2
	insulationInnerR := barrelInnerR - in.InsulationThickness
	if insulationInnerR <= 0 {
		return Geometry{}, errors.New(errors.ErrCodeImpossibleGeometry,
			"backup insulation %.3f consumes the whole barrel radius %.3f", in.InsulationThickness, barrelInnerR)
	}

	g := Geometry{
		Mode:                  mode,
		CentralAngleDeg:       360 / float64(n),
		MiterAngleDeg:         180 / float64(n),
		BarrelOuterRadius:     barrelInnerR + in.BarrelWallThickness,
		BarrelInnerRadius:     barrelInnerR,
		InsulationInnerRadius: insulationInnerR,
	}

	switch mode {
	case ModeFixedFace:
		g.OuterFaceLength = in.FaceLength
		g.BrickOuterRadius = RadiusForChord(in.FaceLength, n)

	case ModeShrinkToFit:
		wantR := RadiusForChord(in.FaceLength, n)
		if wantR > insulationInnerR {
			g.BrickOuterRadius = insulationInnerR
			g.OuterFaceLength = ChordLength(insulationInnerR, n)
			g.SizeAdjusted = true
		} else {
			g.BrickOuterRadius = wantR
			g.OuterFaceLength = in.FaceLength
		}

	case ModeClampReject:
		required := ChordLength(insulationInnerR, n)
		if required > in.FaceLength {
			return Geometry{}, errors.New(errors.ErrCodeImpossibleGeometry,
				"filling %d bricks at radius %.3f needs a %.3f outer face, above the %.3f maximum",
				n, insulationInnerR, required, in.FaceLength)
		}
		g.BrickOuterRadius = insulationInnerR
		g.OuterFaceLength = required
	}

	g.BrickInnerRadius = g.BrickOuterRadius - in.BrickThickness
	if g.BrickInnerRadius <= 0 {
		return Geometry{}, errors.New(errors.ErrCodeImpossibleGeometry,
			"brick thickness %.3f leaves no bore: brick inner radius would be %.3f",
			in.BrickThickness, g.BrickInnerRadius)
	}

	miterRad := g.MiterAngleDeg * math.Pi / 180
	g.InnerFaceLength = g.OuterFaceLength - 2*in.BrickThickness*math.Tan(miterRad)
	if g.InnerFaceLength <= 0 {
		return Geometry{}, errors.New(errors.ErrCodeImpossibleGeometry,
			"miter taper consumes the whole inner face (%.3f): this wedge cannot be cut", g.InnerFaceLength)
	}
	g.TaperPerSide = (g.OuterFaceLength - g.InnerFaceLength) / 2

	g.ClearAcrossCorners = 2 * g.BrickInnerRadius
	g.ClearAcrossFlats = 2 * Apothem(g.BrickInnerRadius, n)

	g.GapAtFaceCenters = insulationInnerR - Apothem(g.BrickOuterRadius, n)
	g.GapAtVertices = insulationInnerR - g.BrickOuterRadius
	g.Interference = g.GapAtVertices < 0 || g.GapAtFaceCenters < 0

	return g, nil
}
