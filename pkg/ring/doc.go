// Package ring computes the geometry of a segmented N-sided refractory brick
// ring fitted inside a cylindrical barrel, and derives the cut dimensions for
// a single wedge-shaped brick, including the miter (off-square) angles.
//
// The package is a pure function layer: Validate rejects out-of-domain inputs
// before any trigonometry runs, and Solve maps a validated input record to a
// complete, internally consistent Geometry record (radii, angles, face
// lengths, clearances, insulation gaps). Solve holds no state between calls
// and is safe for concurrent use.
//
// # Modes
//
// Three solve modes cover the variants seen in the field:
//
//   - ModeFixedFace: the outer face length is taken exactly as given. The
//     brick outer radius is derived from it by the inverse chord relation for
//     reporting only; no fitting is attempted.
//   - ModeShrinkToFit: the face length is a target. If it would push the
//     brick ring into the backup insulation, the ring is silently shrunk to
//     the largest radius that fits and the face recomputed; Geometry records
//     the adjustment in SizeAdjusted.
//   - ModeClampReject: the face length is a hard maximum. If filling N bricks
//     around the available radius needs a longer face, Solve fails instead of
//     adjusting.
//
// All modes assume the backup insulation sits outboard of the brick ring,
// between the bricks and the barrel wall, so the radial budget for the ring
// is the barrel inner radius minus the insulation thickness.
//
// # Regular-polygon relations
//
// The inner brick faces form a regular N-gon. The relations used throughout
// are the chord relation face = 2·r·sin(π/N), the apothem r·cos(π/N), the
// central angle 360°/N and the miter angle 180°/N (half the central angle,
// since two adjacent miters meet across one joint).
package ring
