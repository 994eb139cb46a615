package ring

import "github.com/soniarosenberger/brickring/pkg/errors"

// Validate checks every field of in against its domain before any geometry
// runs. It returns an INVALID_INPUT error naming the first offending field,
// and never mutates in.
func Validate(in Inputs) error {
	if err := errors.RequirePositive("barrel_inside_diameter", in.BarrelInsideDiameter); err != nil {
		return err
	}
	if err := errors.RequireNonNegative("barrel_wall_thickness", in.BarrelWallThickness); err != nil {
		return err
	}
	if err := errors.RequireNonNegative("backup_insulation_thickness", in.InsulationThickness); err != nil {
		return err
	}
	if err := errors.RequirePositive("brick_radial_thickness", in.BrickThickness); err != nil {
		return err
	}
	if err := errors.RequireMinInt("bricks_per_ring", in.BricksPerRing, 3); err != nil {
		return err
	}
	if err := errors.RequirePositive("outer_face_length", in.FaceLength); err != nil {
		return err
	}
	return errors.RequireNonNegative("saw_kerf", in.SawKerf)
}
