package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soniarosenberger/brickring/pkg/errors"
)

const testJob = `
mode = "fixed"
unit = "in"

[barrel]
inside_diameter = 24.0
wall_thickness  = 0.25

[lining]
brick_radial_thickness = 4.5
bricks_per_ring        = 8
outer_face_length      = 9.0
saw_kerf               = 0.125
`

func writeTestJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write job: %v", err)
	}
	return path
}

// runCLI executes the root command with the given args, capturing the report.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out = &out

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestCalcFromFlags(t *testing.T) {
	out, err := runCLI(t,
		"calc", "--mode", "fixed",
		"--diameter", "24", "--wall", "0.25",
		"--brick", "4.5", "--bricks", "8",
		"--face", "9.0", "--kerf", "0.125",
	)
	if err != nil {
		t.Fatalf("calc: %v", err)
	}

	for _, want := range []string{"=== INPUTS ===", "=== OUTPUTS ===", "22.500°", "5.272 in"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestCalcFromJobFile(t *testing.T) {
	path := writeTestJob(t, testJob)

	out, err := runCLI(t, "calc", "--config", path)
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if !strings.Contains(out, "Ø 24.000 in") {
		t.Errorf("report missing barrel diameter:\n%s", out)
	}
	if !strings.Contains(out, "fixed") {
		t.Errorf("report missing mode from job file:\n%s", out)
	}
}

func TestCalcFlagOverridesJobFile(t *testing.T) {
	path := writeTestJob(t, testJob)

	// Override N with a flag; the rest comes from the file.
	out, err := runCLI(t, "calc", "--config", path, "--bricks", "12")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if !strings.Contains(out, "15.000°") {
		t.Errorf("report does not reflect overridden N=12 (miter 15°):\n%s", out)
	}
}

func TestCalcInvalidInputFails(t *testing.T) {
	_, err := runCLI(t,
		"calc", "--diameter", "24", "--brick", "4.5",
		"--bricks", "2", "--face", "9.0",
	)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("error = %v, want INVALID_INPUT", err)
	}
}

func TestCalcMissingJobFileFails(t *testing.T) {
	_, err := runCLI(t, "calc", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestCalcWritesDiagrams(t *testing.T) {
	base := filepath.Join(t.TempDir(), "job")

	_, err := runCLI(t,
		"calc", "--mode", "fixed",
		"--diameter", "24", "--brick", "4.5",
		"--bricks", "8", "--face", "9.0",
		"-o", base,
	)
	if err != nil {
		t.Fatalf("calc: %v", err)
	}

	for _, name := range []string{"job_ring.svg", "job_brick.svg"} {
		if _, err := os.Stat(filepath.Join(filepath.Dir(base), name)); err != nil {
			t.Errorf("missing diagram %s: %v", name, err)
		}
	}
}

func TestCalcNoPartialDiagramsOnFailure(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "job")

	_, err := runCLI(t,
		"calc", "--mode", "clamp",
		"--diameter", "24", "--insulation", "1.0",
		"--brick", "4.5", "--bricks", "8", "--face", "8.0",
		"-o", base,
	)
	if !errors.Is(err, errors.ErrCodeImpossibleGeometry) {
		t.Fatalf("error = %v, want IMPOSSIBLE_GEOMETRY", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("artifacts written despite failure: %v", entries)
	}
}
