// Package config loads brickring job files: TOML documents describing one
// ring computation (barrel, lining, solve mode, output preferences). A job
// file is the static alternative to the interactive prompt and to passing
// every dimension as a flag.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/soniarosenberger/brickring/pkg/errors"
	"github.com/soniarosenberger/brickring/pkg/ring"
)

// Job is one ring computation described by a TOML file.
//
//	mode = "shrink"
//	unit = "in"
//
//	[barrel]
//	inside_diameter = 24.0
//	wall_thickness  = 0.25
//
//	[lining]
//	backup_insulation_thickness = 1.0
//	brick_radial_thickness      = 4.5
//	bricks_per_ring             = 8
//	outer_face_length           = 9.0
//	saw_kerf                    = 0.125
type Job struct {
	Mode   string `toml:"mode"`
	Unit   string `toml:"unit"`
	Barrel struct {
		InsideDiameter float64 `toml:"inside_diameter"`
		WallThickness  float64 `toml:"wall_thickness"`
	} `toml:"barrel"`
	Lining struct {
		BackupInsulationThickness float64 `toml:"backup_insulation_thickness"`
		BrickRadialThickness      float64 `toml:"brick_radial_thickness"`
		BricksPerRing             int     `toml:"bricks_per_ring"`
		OuterFaceLength           float64 `toml:"outer_face_length"`
		SawKerf                   float64 `toml:"saw_kerf"`
	} `toml:"lining"`
}

// Load reads and decodes a job file. Decoding is strict about syntax but not
// about missing fields; missing dimensions surface later as validation
// errors naming the field.
func Load(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read job file %s", path)
	}

	var job Job
	if err := toml.Unmarshal(data, &job); err != nil {
		return Job{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse job file %s", path)
	}
	return job, nil
}

// Inputs converts the job into the engine's input record.
func (j Job) Inputs() ring.Inputs {
	return ring.Inputs{
		BarrelInsideDiameter: j.Barrel.InsideDiameter,
		BarrelWallThickness:  j.Barrel.WallThickness,
		InsulationThickness:  j.Lining.BackupInsulationThickness,
		BrickThickness:       j.Lining.BrickRadialThickness,
		BricksPerRing:        j.Lining.BricksPerRing,
		FaceLength:           j.Lining.OuterFaceLength,
		SawKerf:              j.Lining.SawKerf,
	}
}

// SolveMode returns the job's solve mode, defaulting to shrink-to-fit when
// the file does not set one.
func (j Job) SolveMode() ring.Mode {
	if j.Mode == "" {
		return ring.ModeShrinkToFit
	}
	return ring.Mode(j.Mode)
}

// LengthUnit returns the job's display unit, defaulting to inches.
func (j Job) LengthUnit() string {
	if j.Unit == "" {
		return "in"
	}
	return j.Unit
}
